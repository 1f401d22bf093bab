package main

import (
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/miru/core"
)

func init() {
	runtime.LockOSThread()
}

func newWindow(cfg core.WindowConfiguration) *sdl.Window {
	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_VULKAN)
	if err != nil {
		log.Fatalf("sdl.CreateWindow(): %s", err)
	}
	return window
}

func main() {
	configuration := loadConfiguration()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Fatalf("sdl.Init(): %s", err)
	}
	defer sdl.Quit()

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		log.Fatalf("sdl.VulkanLoadLibrary(): %s", err)
	}
	defer sdl.VulkanUnloadLibrary()

	window := newWindow(configuration.Window)
	defer window.Destroy()

	negotiator := core.NewNegotiator(configuration.Instance.Validation)
	configuration.Instance = negotiator.Negotiate(window.VulkanGetInstanceExtensions())

	backend := core.VulkanBackend{ProcAddr: sdl.VulkanGetVkGetInstanceProcAddr()}
	app, err := core.NewApplication(backend, configuration, window)
	if err != nil {
		log.Fatalf("bootstrap: %s", err)
	}

	log.WithFields(log.Fields{
		"device":     app.DeviceInfo().Name,
		"validation": configuration.Instance.Validation.Enabled,
	}).Info("vulkan context ready")

	time := core.NewTime(configuration.Time)
	exitC := make(chan struct{}, 2)

EventLoop:
	for {
		select {
		case <-exitC:
			log.Println("Event loop exited")
			break EventLoop
		case <-time.EventTicker().C:
			var event sdl.Event
			for event = sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Keysym.Sym == sdl.K_ESCAPE {
						exitC <- struct{}{}
						continue EventLoop
					}
				case *sdl.QuitEvent:
					exitC <- struct{}{}
					continue EventLoop
				}
			}
			// render() goes here once the swapchain work lands
		}
	}

	app.Destroy()
}
