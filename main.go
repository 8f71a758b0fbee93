package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/bitekit/internal/app"
)

// @title           Bitekit API
// @version         1.0
// @description     Bitekit provides random tokens, digests and base64 JSON helpers over HTTP.
// @license.name    MIT
// @license.url     https://mit-license.org/
// @server          http://localhost:8080
func main() {
	application := app.New()
	wait := application.Start()
	<-wait

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx)
}
