package core_test

import (
	"fmt"

	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-rtdsp/dsp/core"
	"github.com/cwbudde/algo-rtdsp/dsp/delay"
	"github.com/cwbudde/algo-rtdsp/dsp/filter/biquad"
)

func ExampleChain() {
	// Two-sample delay followed by a -6 dB gain stage.
	chain := core.NewChain[float64](
		delay.New[float64](2, 8),
		biquad.NewSection[float64](biquad.Coefficients{B0: 0.5}),
	)

	out := make([]float64, 5)
	core.ProcessBlockTo(chain, out, []float64{1, 0, 0, 0, 0})

	fmt.Println(out, chain.LastOut())

	// Output:
	// [0 0 0.5 0 0] 0
}

func ExampleProcessFloatBuffer() {
	cfg := core.ApplyProcessorOptions(core.WithSampleRate(1000))

	buf := &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: int(cfg.SampleRate)},
		Data:   []float64{1, 2, 3, 4, 5},
	}

	line := delay.New[float64](cfg.Samples(0.003), cfg.Samples(0.01))
	if err := core.ProcessFloatBuffer(line, buf); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(buf.Data)

	stereo := &audio.FloatBuffer{Format: &audio.Format{NumChannels: 2}}
	fmt.Println(core.ProcessFloatBuffer(line, stereo))

	// Output:
	// [0 0 0 1 2]
	// only mono buffers are supported: got 2 channels
}
