package main

import (
	"log"

	corecmd "github.com/rabotyaga1336/doc-helper/core/cmd"
	"github.com/rabotyaga1336/doc-helper/internal/app"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		ConfigEnvVar:      "CONFIG_PATH",
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			return app.Load(path)
		},
		Bootstrap: app.Bootstrap,
	})
	if err != nil {
		log.Fatalf("doc-helper: %v", err)
	}
}
