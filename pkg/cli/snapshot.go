package cli

import (
	"image"
	"image/png"
	"os"
	"time"

	"github.com/juju/errors"
	"github.com/nfnt/resize"
	"github.com/spf13/cobra"

	"github.com/kamrankamilli/vncview/pkg/internal/log"
	"github.com/kamrankamilli/vncview/pkg/rfb"
)

var (
	snapshotOut   string
	snapshotScale float64
	snapshotWait  time.Duration
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [host:port | ws://host/path]",
	Short: "Grab one frame as a PNG and exit",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "snapshot.png", "Output file")
	snapshotCmd.Flags().Float64Var(&snapshotScale, "scale", 1.0, "Resample factor applied to the frame")
	snapshotCmd.Flags().DurationVar(&snapshotWait, "wait", 30*time.Second, "How long to wait for the first frame")
}

// snapshotObserver keeps the first frame of the session.
type snapshotObserver struct {
	frames chan *image.RGBA
}

func (s *snapshotObserver) OnConnected(info *rfb.ConnectionInfo) {
	log.Infof("Connected to %q (%dx%d)", info.DesktopName, info.Width, info.Height)
}

func (s *snapshotObserver) OnFrameReady(img *image.RGBA) {
	select {
	case s.frames <- img:
	default:
	}
}

func (s *snapshotObserver) OnError(err error) {}

func (s *snapshotObserver) OnDisconnected() {}

func runSnapshot(cmd *cobra.Command, args []string) error {
	obs := &snapshotObserver{frames: make(chan *image.RGBA, 1)}
	conn, err := rfb.Dial(args[0], obs)
	if err != nil {
		return err
	}
	defer conn.Disconnect()

	var img image.Image
	select {
	case img = <-obs.frames:
	case <-time.After(snapshotWait):
		return errors.New("timed out waiting for a frame")
	}
	img = scaleFrame(img, snapshotScale)

	f, err := os.Create(snapshotOut)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	log.Infof("Wrote %s", snapshotOut)
	return nil
}

// scaleFrame resamples img by the given factor. A factor of 1 or less than
// or equal to zero returns img untouched.
func scaleFrame(img image.Image, scale float64) image.Image {
	if scale <= 0 || scale == 1.0 {
		return img
	}
	b := img.Bounds()
	w := uint(float64(b.Dx()) * scale)
	h := uint(float64(b.Dy()) * scale)
	return resize.Resize(w, h, img, resize.Lanczos3)
}
