package cli

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/kgribble/s3vmcp/internal/config"
	"github.com/kgribble/s3vmcp/internal/embedcli"
	"github.com/kgribble/s3vmcp/internal/s3vec"
	"github.com/kgribble/s3vmcp/internal/tools"
	"github.com/kgribble/s3vmcp/internal/ui"
)

// buildService wires the configured transports into a dispatcher. The
// stub transport serves demos and offline development.
func buildService() *tools.Service {
	cfg := config.Get()

	var api s3vec.API
	switch cfg.Transport.Mode {
	case config.TransportStub:
		log.Debug("Using stub S3 Vectors transport")
		api = s3vec.NewStub()
	default:
		api = s3vec.NewLazyClient(s3vec.Config{
			Region:          cfg.AWS.Region,
			Profile:         cfg.AWS.Profile,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
		})
	}

	runner := embedcli.NewRunner(cfg.EmbedCLI.Tool, cfg.AWS.Region, cfg.AWS.Profile, cfg.EmbedCLI.Debug)

	return tools.NewService(api, runner)
}

// printResult renders an operation result to stdout. Subprocess results
// keep their tagged shape: raw tool output (table rendering, progress
// reports) prints verbatim.
func printResult(title string, result any) {
	fmt.Println(ui.RenderTitle(title))
	if res, ok := result.(*embedcli.Result); ok {
		if res.Decoded {
			fmt.Println(ui.RenderResult(res.Value))
		} else {
			fmt.Println(ui.RenderResult(res.Text))
		}
		return
	}
	fmt.Println(ui.RenderResult(result))
}
