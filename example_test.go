// SPDX-License-Identifier: EPL-2.0

package audmark_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/audmark"
	"github.com/ik5/audmark/formats/wav"
	"github.com/ik5/audmark/internal/audiotest"
	"github.com/ik5/audmark/watermark"
)

// Example tags two seconds of stereo noise, stores it as WAV and checks it.
func Example() {
	src := audiotest.NewNoiseSource(8000, 2, 16000, 42)
	defer src.Close()

	tagged, err := audmark.Tag(src, "wf")
	if err != nil {
		fmt.Println("tag error:", err)
		return
	}

	var file bytes.Buffer
	if err := wav.WritePCM16(&file, tagged); err != nil {
		fmt.Println("write error:", err)
		return
	}

	dec, err := audmark.NewRegistry().ForPath("tagged.wav")
	if err != nil {
		fmt.Println("lookup error:", err)
		return
	}
	decoded, err := dec.Decode(bytes.NewReader(file.Bytes()))
	if err != nil {
		fmt.Println("decode error:", err)
		return
	}
	defer decoded.Close()

	res, err := audmark.Check(decoded, "wf", watermark.DefaultVoteRepeat)
	if err != nil {
		fmt.Println("check error:", err)
		return
	}
	fmt.Printf("matched=%v recovered=%q votes=%d\n", res.Matched, res.Recovered, res.Votes)
	// Output: matched=true recovered="wf" votes=1000
}

func ExampleCheck_tooShort() {
	_, err := audmark.Check(audiotest.NewNoiseSource(8000, 1, 12, 1), "wf", watermark.DefaultVoteRepeat)
	fmt.Println(err)
	// Output: audio too short to contain the watermark bits even once: 12 samples, need at least 16
}
