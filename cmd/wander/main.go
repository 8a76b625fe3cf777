package main

import (
	"flag"
	"log"

	"chosenoffset.com/wander/internal/game"
	raylibplatform "chosenoffset.com/wander/internal/platform/raylib"
	"chosenoffset.com/wander/sceneloader"
)

func main() {
	scenePath := flag.String("scene", "data/demo/scene.json", "path to the scene file to load")
	shaderVS := flag.String("shader-vs", "shaders/spotlight.vs", "vertex shader for the spotlight pass")
	shaderFS := flag.String("shader-fs", "shaders/spotlight.fs", "fragment shader for the spotlight pass")
	flag.Parse()

	log.Printf("Loading scene from %s...", *scenePath)
	scene, err := sceneloader.LoadScene(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	// Initialize the renderer backend (raylib)
	renderer := raylibplatform.NewRenderer(*shaderVS, *shaderFS)
	audio := raylibplatform.NewAudio()
	loader := raylibplatform.NewLoader(renderer, audio)
	input := raylibplatform.NewInput()
	engine := raylibplatform.NewEngine(renderer, audio)

	g := game.New(scene, loader, input, raylibplatform.DriverFactory)
	defer g.Dispose()

	engine.SetWindowSize(1280, 720)
	engine.SetWindowTitle(scene.Name)

	log.Println("Starting game...")
	if err := engine.Run(g); err != nil {
		log.Fatal(err)
	}
}
