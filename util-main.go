package main

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/mstarongithub/wlmaker/common/ipc"
	"github.com/mstarongithub/wlmaker/config"
	"github.com/mstarongithub/wlmaker/wlmtk"
	"github.com/sirupsen/logrus"
	"github.com/swaywm/go-wlroots/wlroots"
	"gitlab.com/mstarongitlab/goutils/sliceutils"
)

var (
	utilAction *string = flag.String(
		"action",
		"outputs",
		"The action to perform. Can be one of:"+
			"\n\t- none: Do nothing"+
			"\n\t- outputs: List available outputs"+
			"\n\t- modes <output>: List available modes for an output",
	)
	outputSelection *string = flag.String(
		"output",
		"",
		"Output to perform the action on. Required for some actions",
	)
	jsonOutput *bool = flag.Bool("json", false, "Print results as json")
)

func utilMain(conf *config.Config) {
	if *help {
		utilHelpMessage()
		return
	}

	// Init a server, used for stuff like getting displays
	server, err := NewServer(conf, wlmtk.DefaultStyle())
	if err != nil {
		logrus.WithError(err).Fatal("initializing server")
	}
	if err = server.Start(); err != nil {
		logrus.WithError(err).Fatal("starting server")
	}

	switch *utilAction {
	case "outputs":
		utilListOutputs(server)
	case "modes":
		if *outputSelection == "" {
			fmt.Println("Output has to be specified")
			return
		}
		utilListOutputModes(server, *outputSelection)
	case "none":
	default:
		fmt.Printf("Unknown action %s\n", *utilAction)
	}
}

func utilHelpMessage() {
	fmt.Println("---- Help message for wlmaker in tool mode ----")
	fmt.Println("\nIn tool mode, wlmaker offers various tools for figuring out configurations and similar")
	fmt.Println("\nGeneral flags:")
	fmt.Println("\t-config: Path to the config file. Default is wlmaker/config.toml in the xdg config dirs")
	fmt.Println("\t-tool: Start as a tool instead of a compositor")
	fmt.Println("\t-help: Show this help message (or the one for compositor mode if -tool is not set)")
	fmt.Println("\nTool flags:")
	fmt.Println("\t-action: The action to perform. Can be one of:")
	fmt.Println("\t\t- (default) outputs: List available outputs")
	fmt.Println("\t\t- modes: List available modes for an output. Use with -output")
	fmt.Println("\t-output: Output to perform the action on. Required for -action modes")
	fmt.Println("\t-json: Print results as json")
}

func printJSON(v any) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logrus.WithError(err).Errorln("Failed to encode result")
		return
	}
	fmt.Println(string(raw))
}

func utilListOutputs(server *Server) {
	outputs := server.GetOutputs()
	if *jsonOutput {
		res := ipc.OutputResponse{Outputs: []string{}, OutputsFound: len(outputs)}
		for _, output := range outputs {
			res.Outputs = append(res.Outputs, output.Name())
		}
		printJSON(res)
		return
	}
	for i, output := range outputs {
		fmt.Printf("Output %v: %s\n", i, output.Name())
	}
}

func utilListOutputModes(server *Server, outputName string) {
	outputs := server.GetOutputs()
	filtered := sliceutils.Filter(outputs, func(output *wlroots.Output) bool {
		return output.Name() == outputName
	})
	if len(filtered) == 0 {
		fmt.Printf("Output %s not found\n", outputName)
		return
	}
	modes := filtered[0].Modes()
	if *jsonOutput {
		res := ipc.OutputResponse{
			Outputs:      []string{outputName},
			OutputModes:  map[string][]ipc.OutputMode{outputName: {}},
			OutputsFound: 1,
		}
		for _, mode := range modes {
			res.OutputModes[outputName] = append(res.OutputModes[outputName], ipc.OutputMode{
				Width:       int(mode.Width()),
				Height:      int(mode.Height()),
				RefreshRate: int(mode.Refresh()),
				Preferred:   mode.Preferred(),
			})
		}
		printJSON(res)
		return
	}
	fmt.Printf("Modes for output %s:\n", outputName)
	for _, mode := range modes {
		if mode.Preferred() {
			fmt.Printf("\t- %dx%d@%d(Ratio: %d) (preferred)\n", mode.Width(), mode.Height(), mode.Refresh(), mode.PictureAspectRatio())
		} else {
			fmt.Printf("\t- %dx%d@%d(Ratio: %d)\n", mode.Width(), mode.Height(), mode.Refresh(), mode.PictureAspectRatio())
		}
	}
}
