// Package viewer is an SDL2 front end for a session: it renders frames from
// the session observer and feeds captured mouse and keyboard input back
// through the input queue.
package viewer

import (
	"image"
	"runtime"
	"sync/atomic"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/kamrankamilli/vncview/pkg/input"
	"github.com/kamrankamilli/vncview/pkg/internal/log"
	"github.com/kamrankamilli/vncview/pkg/rfb"
	"github.com/kamrankamilli/vncview/pkg/rfb/types"
)

// renderLatest hands the frame to Update as a byte slice; go-sdl2 releases
// after v0.4.12 changed the pixels parameter to unsafe.Pointer.
var _ func(*sdl.Texture, *sdl.Rect, []byte, int) error = (*sdl.Texture).Update

// Viewer owns one window showing one session. The window is created at the
// remote framebuffer's size and never resized, so window coordinates map to
// framebuffer coordinates directly.
type Viewer struct {
	title string

	conn    *rfb.Conn
	tracker *input.KeyTracker

	info         *rfb.ConnectionInfo
	frames       chan *image.RGBA
	disconnected atomic.Bool

	// pointer state carried between events, for drags and wheel clicks
	buttonMask   uint8
	lastX, lastY uint16

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

// New returns a viewer that will title its window with title, or with the
// remote desktop name when title is empty.
func New(title string) *Viewer {
	return &Viewer{
		title:   title,
		tracker: input.NewKeyTracker(),
		frames:  make(chan *image.RGBA, 2),
	}
}

// Run connects to addr and blocks in the render loop until the window is
// closed or the session ends.
func (v *Viewer) Run(addr string) error {
	// SDL wants window and event calls on one OS thread.
	runtime.LockOSThread()

	conn, err := rfb.Dial(addr, v)
	if err != nil {
		return err
	}
	v.conn = conn
	defer conn.Disconnect()

	if err := v.initSDL(); err != nil {
		return err
	}
	defer v.destroySDL()

	for !v.disconnected.Load() {
		if !v.pollEvents() {
			break
		}
		v.renderLatest()
		sdl.Delay(10)
	}
	return nil
}

// OnConnected records the negotiated session info. Runs before Dial returns,
// on the same goroutine, so Run can size the window off it afterwards.
func (v *Viewer) OnConnected(info *rfb.ConnectionInfo) { v.info = info }

// OnFrameReady hands a frame to the render loop, keeping only the latest.
// The rendering pace is the window's, not the server's.
func (v *Viewer) OnFrameReady(img *image.RGBA) {
	select {
	case v.frames <- img:
	default:
		select {
		case <-v.frames:
		default:
		}
		select {
		case v.frames <- img:
		default:
		}
	}
}

// OnError observes transient session errors. The session retries on its own;
// the viewer only records them.
func (v *Viewer) OnError(err error) { log.Debugf("Session error: %v", err) }

// OnDisconnected stops the render loop.
func (v *Viewer) OnDisconnected() { v.disconnected.Store(true) }

func (v *Viewer) initSDL() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	title := v.title
	if title == "" {
		title = v.info.DesktopName
	}
	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(v.info.Width), int32(v.info.Height), sdl.WINDOW_SHOWN)
	if err != nil {
		return err
	}
	rend, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return err
	}
	tex, err := rend.CreateTexture(sdl.PIXELFORMAT_RGBA32, sdl.TEXTUREACCESS_STREAMING,
		int32(v.info.Width), int32(v.info.Height))
	if err != nil {
		return err
	}
	v.window, v.renderer, v.texture = win, rend, tex
	return nil
}

func (v *Viewer) destroySDL() {
	if v.texture != nil {
		v.texture.Destroy()
	}
	if v.renderer != nil {
		v.renderer.Destroy()
	}
	if v.window != nil {
		v.window.Destroy()
	}
	sdl.Quit()
}

// pollEvents drains the SDL event queue, forwarding input to the session.
// Returns false when the window was closed.
func (v *Viewer) pollEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.MouseMotionEvent:
			v.pointerMoved(ev.X, ev.Y)
		case *sdl.MouseButtonEvent:
			v.pointerButton(ev)
		case *sdl.MouseWheelEvent:
			v.pointerWheel(ev)
		case *sdl.KeyboardEvent:
			v.key(ev)
		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_FOCUS_LOST {
				v.releaseHeldKeys()
			}
		}
	}
	return true
}

func (v *Viewer) renderLatest() {
	select {
	case img := <-v.frames:
		_ = v.texture.Update(nil, img.Pix, img.Stride)
		_ = v.renderer.Copy(v.texture, nil, nil)
		v.renderer.Present()
	default:
	}
}

func (v *Viewer) clampToFramebuffer(x, y int32) (uint16, uint16) {
	maxX, maxY := int32(v.info.Width-1), int32(v.info.Height-1)
	if x < 0 {
		x = 0
	} else if x > maxX {
		x = maxX
	}
	if y < 0 {
		y = 0
	} else if y > maxY {
		y = maxY
	}
	return uint16(x), uint16(y)
}

func (v *Viewer) pointerMoved(x, y int32) {
	fx, fy := v.clampToFramebuffer(x, y)
	v.lastX, v.lastY = fx, fy
	v.conn.EnqueuePointer(fx, fy, v.buttonMask)
}

func (v *Viewer) pointerButton(ev *sdl.MouseButtonEvent) {
	bit := buttonBit(ev.Button)
	if bit == 0 {
		return
	}
	if ev.State == sdl.PRESSED {
		v.buttonMask |= bit
	} else {
		v.buttonMask &^= bit
	}
	fx, fy := v.clampToFramebuffer(ev.X, ev.Y)
	v.lastX, v.lastY = fx, fy
	v.conn.EnqueuePointer(fx, fy, v.buttonMask)
}

func buttonBit(b uint8) uint8 {
	switch b {
	case sdl.BUTTON_LEFT:
		return types.ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return types.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return types.ButtonRight
	}
	return 0
}

// pointerWheel sends a press/release pair on the wheel pseudo-buttons at the
// last known pointer position.
func (v *Viewer) pointerWheel(ev *sdl.MouseWheelEvent) {
	var bit uint8
	switch {
	case ev.Y > 0:
		bit = types.ButtonWheelUp
	case ev.Y < 0:
		bit = types.ButtonWheelDown
	default:
		return
	}
	v.conn.EnqueuePointer(v.lastX, v.lastY, v.buttonMask|bit)
	v.conn.EnqueuePointer(v.lastX, v.lastY, v.buttonMask)
}

func (v *Viewer) key(ev *sdl.KeyboardEvent) {
	code := uint32(ev.Keysym.Scancode)
	if ev.Type == sdl.KEYDOWN {
		ks := keysymFor(ev.Keysym)
		if ks == 0 {
			return
		}
		// The press-time keysym is recorded so the matching release
		// repeats it even if modifiers moved in between.
		v.conn.EnqueueKey(v.tracker.Press(code, ks), true)
		return
	}
	ks, ok := v.tracker.Release(code)
	if !ok {
		return
	}
	v.conn.EnqueueKey(ks, false)
}

func (v *Viewer) releaseHeldKeys() {
	for _, ks := range v.tracker.ReleaseAll() {
		v.conn.EnqueueKey(ks, false)
	}
}
