package slides

import (
	"fmt"
	"slices"
)

// WrapBlocks splits any stanza of the first track that exceeds maxLines into
// two stanzas, moving the lines of every track in lock-step so stanza
// boundaries stay aligned. An overlong stanza is split roughly in half,
// capped so the first half never exceeds the limit; the second half is
// re-examined and split again when still too long. A maxLines below 1
// disables wrapping.
//
// All tracks must have the same stanza count. A mismatch means the assembler
// upstream broke its alignment guarantee, so WrapBlocks panics instead of
// returning an error.
//
// Tracks are modified in place; the (possibly reallocated) tracks are
// returned. After wrapping, only the first track is guaranteed to honor
// maxLines, the other tracks merely follow its stanza boundaries.
func WrapBlocks(tracks [][]Block, maxLines int) [][]Block {
	if len(tracks) == 0 || maxLines < 1 {
		return tracks
	}
	for t, track := range tracks {
		if len(track) != len(tracks[0]) {
			panic(fmt.Sprintf("slides: track %d has %d stanzas, track 0 has %d", t, len(track), len(tracks[0])))
		}
	}

	for i := 0; i < len(tracks[0]); i++ {
		size := len(tracks[0][i])
		if size <= maxLines {
			continue
		}
		split := min(maxLines-1, size/2)
		if split < 1 {
			// maxLines of 1 would otherwise move every line and loop forever
			split = 1
		}
		for t := range tracks {
			tracks[t] = slices.Insert(tracks[t], i+1, Block(nil))
			if len(tracks[t][i]) > split {
				tracks[t][i+1] = append(Block(nil), tracks[t][i][split:]...)
				tracks[t][i] = tracks[t][i][:split:split]
			}
		}
	}
	return tracks
}
