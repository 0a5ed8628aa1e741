// Package cli wires up the vncview commands and flags.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/kamrankamilli/vncview/pkg/config"
	"github.com/kamrankamilli/vncview/pkg/viewer"
)

var windowTitle string

// RootCmd is the top-level vncview command: open a viewer window on the
// given server.
var RootCmd = &cobra.Command{
	Use:   "vncview [host:port | ws://host/path]",
	Short: "A VNC viewer for Raw-encoded sessions",
	Long: `vncview connects to a VNC server, pins a 32-bit true-colour pixel format,
and polls full framebuffer updates over the Raw encoding. Plain host:port
addresses use TCP; ws:// and wss:// URLs connect through websockify-style
proxies. Only servers offering the None security type are supported.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return viewer.New(windowTitle).Run(args[0])
	},
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.BoolVarP(&config.Debug, "debug", "d", false, "Enable debug logging")
	flags.DurationVar(&config.ConnectTimeout, "connect-timeout", config.ConnectTimeout, "TCP/websocket connect timeout")
	flags.DurationVar(&config.ReadTimeout, "read-timeout", config.ReadTimeout, "Per-read deadline on the session socket")
	flags.DurationVar(&config.WriteTimeout, "write-timeout", config.WriteTimeout, "Per-write deadline on the session socket")
	flags.DurationVar(&config.LoopDelay, "loop-delay", config.LoopDelay, "Pause between successful update cycles")
	flags.DurationVar(&config.RetryDelay, "retry-delay", config.RetryDelay, "Pause before retrying a failed update cycle")

	RootCmd.Flags().StringVar(&windowTitle, "title", "", "Window title (defaults to the remote desktop name)")

	RootCmd.AddCommand(snapshotCmd)
}
