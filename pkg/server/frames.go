package server

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/veltaweb/velta/internal/errors"
)

// Live channel frame types. Frames are msgpack-encoded; the first
// field identifies the shape of the rest.
const (
	frameEvent byte = 1
	framePatch byte = 2
)

// Patch is one DOM mutation pushed to the thin client.
type Patch struct {
	// Target is the hydration ID of the element to mutate.
	Target string `msgpack:"target"`

	// Op is the mutation kind: "text", "attr", "remove".
	Op string `msgpack:"op"`

	// Key is the attribute name for attr ops.
	Key string `msgpack:"key,omitempty"`

	// Value is the new text or attribute value.
	Value string `msgpack:"value,omitempty"`
}

// LiveEvent is a DOM event forwarded by the thin client.
type LiveEvent struct {
	Type    string `msgpack:"type"`
	Target  string `msgpack:"target"`
	Value   string `msgpack:"value,omitempty"`
	Checked bool   `msgpack:"checked,omitempty"`
}

type patchFrame struct {
	Kind    byte    `msgpack:"kind"`
	Patches []Patch `msgpack:"patches"`
}

type eventFrame struct {
	Kind  byte      `msgpack:"kind"`
	Event LiveEvent `msgpack:"event"`
}

// encodePatchFrame packs patches into a wire frame.
func encodePatchFrame(patches []Patch) ([]byte, error) {
	data, err := msgpack.Marshal(patchFrame{Kind: framePatch, Patches: patches})
	if err != nil {
		return nil, errors.New("V500").Wrap(err)
	}
	return data, nil
}

// decodeEventFrame unpacks a client event frame.
func decodeEventFrame(data []byte) (LiveEvent, error) {
	var f eventFrame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return LiveEvent{}, errors.New("V501").Wrap(err)
	}
	if f.Kind != frameEvent {
		return LiveEvent{}, errors.New("V501").
			WithDetail(fmt.Sprintf("unexpected frame kind %d, want event", f.Kind))
	}
	return f.Event, nil
}

// encodeEventFrame packs an event frame. The thin client does this on
// its side; the server uses it in tests and tooling.
func encodeEventFrame(e LiveEvent) ([]byte, error) {
	data, err := msgpack.Marshal(eventFrame{Kind: frameEvent, Event: e})
	if err != nil {
		return nil, errors.New("V500").Wrap(err)
	}
	return data, nil
}

// decodePatchFrame unpacks a patch frame, the mirror of the client's
// receive path.
func decodePatchFrame(data []byte) ([]Patch, error) {
	var f patchFrame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, errors.New("V501").Wrap(err)
	}
	if f.Kind != framePatch {
		return nil, errors.New("V501").
			WithDetail(fmt.Sprintf("unexpected frame kind %d, want patch", f.Kind))
	}
	return f.Patches, nil
}
