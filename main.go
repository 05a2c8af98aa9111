package main

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hunterelise/opengl-renderer/camera"
	"github.com/hunterelise/opengl-renderer/clipplane"
	"github.com/hunterelise/opengl-renderer/shader"
)

// Constants for window dimensions and scene parameters
const (
	screenWidth  = 1280
	screenHeight = 720
	windowTitle  = "Clip Plane Viewer"

	fovY      = 60.0
	nearPlane = 0.1
	farPlane  = 100.0

	gridHalfExtent = 10.0
	gridDivisions  = 20
	axisSegments   = 3 // sub-draws of the axes mesh, one per color
	planeHalfSize  = 3.0
)

// Rotation axis for the lit solid, tilted off Y so every face comes into
// view over time.
var cubeSpinAxis = mgl32.Vec3{0.4, 1.0, 0.2}.Normalize()

// Fixed directional light and scene colors.
var (
	lightDir     = mgl32.Vec3{-0.4, -1.0, -0.3}
	ambientColor = mgl32.Vec3{0.15, 0.15, 0.15}
	cubeColor    = mgl32.Vec3{0.8, 0.45, 0.2}
	planeColor   = mgl32.Vec3{0.3, 0.6, 0.9}
	gridColor    = mgl32.Vec3{0.35, 0.35, 0.35}
	axisColors   = [axisSegments]mgl32.Vec3{{0.9, 0.2, 0.2}, {0.2, 0.9, 0.2}, {0.2, 0.4, 0.9}}
)

// AppCore struct encapsulates the window, GPU resources and per-frame
// viewer state.
type AppCore struct {
	window *glfw.Window

	// Shader programs and scene meshes
	flatShader *shader.Shader
	litShader  *shader.Shader
	grid       mesh
	axes       mesh
	plane      mesh
	cube       mesh

	// Window dimensions
	width, height int
	title         string

	// Internal state for main loop
	running bool

	// Camera and clip plane state
	cam     camera.OrbitCamera
	clip    clipplane.Plane
	clipCtl clipplane.Controller

	// Mouse drag state; the cursor callback turns absolute positions into
	// deltas itself.
	firstCursor bool
	cursorLastX float64
	cursorLastY float64
	orbiting    bool
	panning     bool

	// Game state for animation
	spinAngle       float32
	rotationEnabled bool
	rKeyWasPressed  bool
	lastFrameTime   time.Time

	// FPS Counter state
	fpsFrames         int
	fpsLastUpdateTime time.Time

	// VSync Control state
	vsyncEnabled   bool
	vKeyWasPressed bool
}

// Global instance of AppCore
var app *AppCore

// initApp initializes GLFW, the OpenGL context, and the scene resources.
func initApp() error {
	app = &AppCore{
		width:           screenWidth,
		height:          screenHeight,
		title:           windowTitle,
		running:         true,
		firstCursor:     true,
		rotationEnabled: true,
		cam:             camera.New(),
		clip:            clipplane.New(),
		clipCtl:         clipplane.NewController(),
	}

	if err := app.initializeWindow(); err != nil {
		return fmt.Errorf("window initialization failed: %w", err)
	}

	if err := app.initializeOpenGL(); err != nil {
		return fmt.Errorf("OpenGL initialization failed: %w", err)
	}

	if err := app.loadShaders(); err != nil {
		return fmt.Errorf("shader setup failed: %w", err)
	}

	app.setupMeshes()

	app.lastFrameTime = time.Now()
	app.fpsLastUpdateTime = time.Now()

	return nil
}

// initializeWindow handles GLFW initialization, window creation, and the
// input callbacks.
func (a *AppCore) initializeWindow() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(a.width, a.height, a.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	a.window = window
	a.window.MakeContextCurrent()

	// Initialize VSync state to ON (capped)
	a.vsyncEnabled = true
	glfw.SwapInterval(1)

	a.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		a.width = width
		a.height = height
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	a.window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if a.firstCursor {
			a.cursorLastX, a.cursorLastY = xpos, ypos
			a.firstCursor = false
			return
		}
		dx := float32(xpos - a.cursorLastX)
		dy := float32(ypos - a.cursorLastY)
		a.cursorLastX, a.cursorLastY = xpos, ypos

		if a.orbiting {
			a.cam.Orbit(dx, dy)
		}
		if a.panning {
			a.cam.Pan(dx, dy)
		}
	})

	a.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		pressed := action == glfw.Press
		switch button {
		case glfw.MouseButtonLeft:
			a.orbiting = pressed
		case glfw.MouseButtonRight:
			a.panning = pressed
		}
	})

	a.window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		a.cam.Zoom(float32(yoff))
	})

	return nil
}

// initializeOpenGL initializes GL and sets global OpenGL states.
func (a *AppCore) initializeOpenGL() error {
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Printf("Renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	log.Printf("OpenGL:   %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.DEPTH_TEST)
	gl.Viewport(0, 0, int32(a.width), int32(a.height))
	return nil
}

// loadShaders builds the two programs from their on-disk sources. A
// missing source file is fatal; bad GLSL is only logged by the shader
// package so the viewer survives live edits.
func (a *AppCore) loadShaders() error {
	flat, err := shader.New("shaders/flat.vs", "shaders/flat.fs")
	if err != nil {
		return err
	}
	a.flatShader = flat

	lit, err := shader.New("shaders/lit.vs", "shaders/lit.fs")
	if err != nil {
		return err
	}
	a.litShader = lit

	return nil
}

// setupMeshes uploads the static scene geometry.
func (a *AppCore) setupMeshes() {
	a.grid = newMesh(gridVertices(gridHalfExtent, gridDivisions), nil, 3, gl.LINES)
	a.axes = newMesh(axesVertices, nil, 3, gl.LINES)
	a.plane = newMesh(quadVertices, quadIndices, 3, gl.TRIANGLES)
	a.cube = newMesh(cubeVertices, cubeIndices, 6, gl.TRIANGLES)
}

// processInput handles keyboard input. Mouse input arrives through the
// callbacks registered in initializeWindow.
func (a *AppCore) processInput(deltaTime float32) {
	glfw.PollEvents()

	if a.window.GetKey(glfw.KeyEscape) == glfw.Press {
		a.running = false
	}

	// VSync toggle logic
	currentVState := a.window.GetKey(glfw.KeyV)
	if currentVState == glfw.Press && !a.vKeyWasPressed {
		a.vsyncEnabled = !a.vsyncEnabled
		if a.vsyncEnabled {
			glfw.SwapInterval(1)
			log.Println("VSync: ON (FPS capped)")
		} else {
			glfw.SwapInterval(0)
			log.Println("VSync: OFF (FPS uncapped)")
		}
	}
	a.vKeyWasPressed = (currentVState == glfw.Press)

	// Rotation pause toggle
	currentRState := a.window.GetKey(glfw.KeyR)
	if currentRState == glfw.Press && !a.rKeyWasPressed {
		a.rotationEnabled = !a.rotationEnabled
	}
	a.rKeyWasPressed = (currentRState == glfw.Press)

	// Clip plane input; the controller does the toggle edge detection.
	a.clipCtl.Update(&a.clip, clipplane.Input{
		Toggle:  a.window.GetKey(glfw.KeyC) == glfw.Press,
		Raise:   a.window.GetKey(glfw.KeyUp) == glfw.Press,
		Lower:   a.window.GetKey(glfw.KeyDown) == glfw.Press,
		PresetX: a.window.GetKey(glfw.KeyX) == glfw.Press,
		PresetY: a.window.GetKey(glfw.KeyY) == glfw.Press,
		PresetZ: a.window.GetKey(glfw.KeyZ) == glfw.Press,
	}, deltaTime)
}

// updateScene advances the solid's rotation while it is enabled.
func (a *AppCore) updateScene(deltaTime float32) {
	if a.rotationEnabled {
		a.spinAngle += deltaTime
	}
}

// renderScene clears the frame and draws the scene in fixed order: grid,
// axes, translucent clip quad, lit solid.
func (a *AppCore) renderScene() {
	gl.ClearColor(0.08, 0.10, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	// View and projection are computed once per frame and shared by every
	// draw. Aspect falls back to 1 when the window is minimized.
	fbWidth, fbHeight := a.window.GetFramebufferSize()
	aspect := float32(1.0)
	if fbHeight > 0 {
		aspect = float32(fbWidth) / float32(fbHeight)
	}
	projection := mgl32.Perspective(mgl32.DegToRad(fovY), aspect, nearPlane, farPlane)
	view := a.cam.ViewMatrix()
	eye := a.cam.Position()

	// 1 + 2: grid and axes, opaque.
	a.flatShader.Use()
	a.flatShader.SetMat4("view", view)
	a.flatShader.SetMat4("projection", projection)
	a.flatShader.SetFloat("alpha", 1.0)

	a.flatShader.SetMat4("model", mgl32.Ident4())
	a.flatShader.SetVec3("objectColor", gridColor)
	a.grid.draw()

	for i := int32(0); i < axisSegments; i++ {
		a.flatShader.SetVec3("objectColor", axisColors[i])
		a.axes.drawRange(i*2, 2)
	}

	// 3: translucent clip quad. Depth writes are off so it never occludes
	// the solid drawn after it; depth test stays on so nearer opaque
	// geometry still hides it. State is restored immediately.
	if a.clip.Enabled {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		gl.DepthMask(false)

		a.flatShader.SetMat4("model", a.clip.QuadTransform(planeHalfSize))
		a.flatShader.SetVec3("objectColor", planeColor)
		a.flatShader.SetFloat("alpha", 0.35)
		a.plane.draw()

		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}

	// 4: the lit solid, carrying the live clip state for its discard test.
	model := mgl32.HomogRotate3D(a.spinAngle, cubeSpinAxis)

	a.litShader.Use()
	a.litShader.SetMat4("model", model)
	a.litShader.SetMat4("view", view)
	a.litShader.SetMat4("projection", projection)
	a.litShader.SetVec3("objectColor", cubeColor)
	a.litShader.SetVec3("viewPos", eye)
	a.litShader.SetVec3("lightDir", lightDir)
	a.litShader.SetVec3("ambientColor", ambientColor)
	a.litShader.SetFloat("shininess", 32.0)
	clipEnabled := int32(0)
	if a.clip.Enabled {
		clipEnabled = 1
	}
	a.litShader.SetInt("clipEnabled", clipEnabled)
	a.litShader.SetVec3("clipNormal", a.clip.Normal)
	a.litShader.SetFloat("clipD", a.clip.D)
	a.cube.draw()

	gl.UseProgram(0)

	a.window.SwapBuffers()
}

// updateAndDisplayFPS calculates and displays FPS in the window title.
func (a *AppCore) updateAndDisplayFPS() {
	a.fpsFrames++
	if time.Since(a.fpsLastUpdateTime) >= time.Second {
		fps := float64(a.fpsFrames) / time.Since(a.fpsLastUpdateTime).Seconds()
		a.window.SetTitle(fmt.Sprintf("%s | FPS: %.2f", a.title, fps))
		a.fpsFrames = 0
		a.fpsLastUpdateTime = time.Now()
	}
}

// shutdownApp releases GPU resources in reverse order of acquisition,
// then the window and GLFW.
func shutdownApp() {
	if app == nil {
		return
	}
	if app.window != nil {
		app.cube.delete()
		app.plane.delete()
		app.axes.delete()
		app.grid.delete()
		if app.litShader != nil {
			app.litShader.Delete()
		}
		if app.flatShader != nil {
			app.flatShader.Delete()
		}
	}

	if app.window != nil {
		app.window.Destroy()
	}
	glfw.Terminate()
}

// shouldClose returns true if the window should close.
func (a *AppCore) shouldClose() bool {
	return a.window.ShouldClose() || !a.running
}

// main orchestrates the application flow using high-level functions.
func main() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer shutdownApp()

	if err := initApp(); err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	log.Println("Viewer initialized. Starting main loop...")

	for !app.shouldClose() {
		// Calculate delta time
		currentTime := time.Now()
		deltaTime := float32(currentTime.Sub(app.lastFrameTime).Seconds())
		app.lastFrameTime = currentTime

		// 1. Event processing and input
		app.processInput(deltaTime)

		// 2. Update scene state
		app.updateScene(deltaTime)

		// 3. Render
		app.renderScene()

		// 4. Update and display FPS
		app.updateAndDisplayFPS()
	}

	log.Println("Viewer shutting down.")
}
