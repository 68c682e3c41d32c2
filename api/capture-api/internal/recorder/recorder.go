// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.
package internal_recorder

import "context"

// Recorder is the capture sink for a recording session.
type Recorder interface {
	// Start begins the recording timeline. All subsequent Record calls are
	// placed on a wall-clock timeline relative to this moment.
	Start()
	// Record places a chunk of PCM audio on the timeline.
	Record(ctx context.Context, audio []byte) error
	// Persist renders the recorded timeline and returns the file bytes.
	Persist() ([]byte, error)
}
