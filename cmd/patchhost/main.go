// Command patchhost is a minimal standalone host for a patch processor: it
// streams the demo patch's output to the system audio device and feeds it
// MIDI input, standing in for the plugin host during development.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/oto"
	"gitlab.com/gomidi/rtmididrv"
	"golang.org/x/sync/errgroup"

	"github.com/rnbogo/rnbogo/pkg/framework/debug"
	fwplugin "github.com/rnbogo/rnbogo/pkg/framework/plugin"
	"github.com/rnbogo/rnbogo/pkg/framework/process"
	"github.com/rnbogo/rnbogo/pkg/midi"
	"github.com/rnbogo/rnbogo/pkg/patch/gaintone"
	"github.com/rnbogo/rnbogo/pkg/plugin"
	"github.com/rnbogo/rnbogo/pkg/ui"
)

const (
	channelNum      = 2
	bitDepthInBytes = 2
	bytesPerSample  = bitDepthInBytes * channelNum
	midiQueueSize   = 256
)

func main() {
	var (
		sampleRate = flag.Int("samplerate", 48000, "output sample rate")
		blockSize  = flag.Int("block", 512, "processing block size in frames")
		toneFreq   = flag.Float64("tone", 220, "test-tone frequency fed into the patch inputs, 0 = silence")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	logger := debug.Default()
	logger.SetPrefix("patchhost")
	if *verbose {
		debug.SetLevel(debug.LogLevelDebug)
	}

	engine := gaintone.New()
	proc := plugin.NewPatchProcessor(fwplugin.Info{
		ID:       "com.rnbogo.examples.gaintone",
		Name:     "GainTone",
		Version:  "1.0.0",
		Vendor:   "rnbogo",
		Category: "Fx",
	}, engine)

	if err := proc.Initialize(float64(*sampleRate), int32(*blockSize)); err != nil {
		log.Fatalf("initialize: %v", err)
	}
	logger.Info("plugin %s uid=%x", proc.Info().Name, proc.Info().UID())

	printEditor(proc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-signalCh
		logger.Info("caught signal %s, shutting down", sig)
		cancel()
	}()

	rawMIDI := make(chan []byte, midiQueueSize)
	host := newHostLoop(ctx, proc, *sampleRate, *blockSize, *toneFreq, rawMIDI)

	otoContext, err := oto.NewContext(*sampleRate, channelNum, bitDepthInBytes, *blockSize*bytesPerSample)
	if err != nil {
		log.Fatalf("audio output: %v", err)
	}
	defer otoContext.Close()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return playAudio(ctx, otoContext, host, *blockSize)
	})
	g.Go(func() error {
		listenMIDI(ctx, rawMIDI, logger)
		return nil
	})
	if err := g.Wait(); err != nil && err != io.EOF {
		log.Fatalf("error: %v", err)
	}
	logger.Info("patchhost ended")
}

func printEditor(proc *plugin.PatchProcessor) {
	editor := proc.CreateEditor()
	defer editor.Close()

	view := editor.ActiveView().(*ui.ParamView)
	fmt.Printf("%d parameters:\n", len(view.Controls()))
	for _, c := range view.Controls() {
		d := c.Descriptor()
		fmt.Printf("  [%d] %-12s %-16s range %g..%g inc %g/%g\n",
			d.Index, d.Identifier, c.Label(), d.Min, d.Max,
			c.CoarseIncrement(), c.FineIncrement())
	}
}

// hostLoop drives the processor the way a plugin host would: one fixed-size
// block per Read call, MIDI drained at block boundaries. It implements
// io.Reader producing interleaved 16-bit PCM for oto.
type hostLoop struct {
	ctx     context.Context
	proc    *plugin.PatchProcessor
	pctx    *process.Context
	events  *midi.Buffer
	rawMIDI <-chan []byte

	input   [][]float32
	output  [][]float32
	inView  [][]float32
	outView [][]float32

	tonePhase float64
	toneStep  float64
}

func newHostLoop(ctx context.Context, proc *plugin.PatchProcessor, sampleRate, blockSize int, toneFreq float64, rawMIDI <-chan []byte) *hostLoop {
	engine := proc.Engine()
	input := make([][]float32, engine.NumInputChannels())
	for ch := range input {
		input[ch] = make([]float32, blockSize)
	}
	output := make([][]float32, engine.NumOutputChannels())
	for ch := range output {
		output[ch] = make([]float32, blockSize)
	}

	pctx := process.NewContext(blockSize, proc.GetParameters())
	pctx.SampleRate = float64(sampleRate)

	return &hostLoop{
		ctx:      ctx,
		proc:     proc,
		pctx:     pctx,
		events:   midi.NewBuffer(midiQueueSize),
		rawMIDI:  rawMIDI,
		input:    input,
		output:   output,
		inView:   make([][]float32, len(input)),
		outView:  make([][]float32, len(output)),
		toneStep: 2 * math.Pi * toneFreq / float64(sampleRate),
	}
}

func (h *hostLoop) Read(buf []byte) (int, error) {
	select {
	case <-h.ctx.Done():
		return 0, io.EOF
	default:
	}

	frames := len(buf) / bytesPerSample
	if frames > len(h.output[0]) {
		frames = len(h.output[0])
	}

	h.fillInput(frames)
	h.drainMIDI()

	for ch := range h.input {
		h.inView[ch] = h.input[ch][:frames]
	}
	for ch := range h.output {
		h.outView[ch] = h.output[ch][:frames]
	}
	h.pctx.Input = h.inView
	h.pctx.Output = h.outView
	h.proc.ProcessBlock(h.pctx, h.events)
	h.events.Clear()

	writePCM(buf, h.output, frames)
	return frames * bytesPerSample, nil
}

func (h *hostLoop) fillInput(frames int) {
	if h.toneStep == 0 {
		for ch := range h.input {
			for i := 0; i < frames; i++ {
				h.input[ch][i] = 0
			}
		}
		return
	}
	phase := h.tonePhase
	for i := 0; i < frames; i++ {
		s := float32(math.Sin(phase)) * 0.5
		for ch := range h.input {
			h.input[ch][i] = s
		}
		phase += h.toneStep
	}
	h.tonePhase = math.Mod(phase, 2*math.Pi)
}

func (h *hostLoop) drainMIDI() {
	for {
		select {
		case raw := <-h.rawMIDI:
			if e, ok := midi.Decode(raw, 0); ok {
				h.events.Add(e)
			}
		default:
			return
		}
	}
}

func writePCM(buf []byte, output [][]float32, frames int) {
	const max = 32767
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channelNum; ch++ {
			src := ch
			if src >= len(output) {
				src = len(output) - 1
			}
			v := output[src][i]
			if v > 1 {
				v = 1
			} else if v < -1 {
				v = -1
			}
			b := int16(v * max)
			buf[bytesPerSample*i+2*ch] = byte(b)
			buf[bytesPerSample*i+2*ch+1] = byte(b >> 8)
		}
	}
}

func playAudio(ctx context.Context, otoContext *oto.Context, host *hostLoop, blockSize int) error {
	player := otoContext.NewPlayer()
	defer func() {
		if err := player.Close(); err != nil {
			log.Printf("error closing player: %v", err)
		}
	}()

	// blocks until the context is cancelled and Read returns EOF
	_, err := io.CopyBuffer(player, host, make([]byte, blockSize*bytesPerSample))
	return err
}

func listenMIDI(ctx context.Context, out chan<- []byte, logger *debug.Logger) {
	drv, err := rtmididrv.New()
	if err != nil {
		logger.Warn("MIDI driver unavailable: %v", err)
		return
	}
	defer func() {
		if err := drv.Close(); err != nil {
			logger.Warn("failed to close MIDI driver: %v", err)
		}
	}()

	ins, err := drv.Ins()
	if err != nil || len(ins) == 0 {
		logger.Warn("no MIDI input found")
		return
	}
	in := ins[0]
	if err := in.Open(); err != nil {
		logger.Warn("failed to open MIDI input: %v", err)
		return
	}
	defer in.Close()

	logger.Info("listening on MIDI input %s", in.String())
	if err := in.SetListener(func(data []byte, deltaMicroseconds int64) {
		msg := make([]byte, len(data))
		copy(msg, data)
		select {
		case out <- msg:
		default:
			// queue full, drop
		}
	}); err != nil {
		logger.Warn("failed to set MIDI listener: %v", err)
		return
	}
	defer in.StopListening()

	<-ctx.Done()
}
