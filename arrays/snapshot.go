package arrays

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/reactivetui/tuicore/registry"
)

var snapshotJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Snapshot is a flattened, JSON-friendly dump of every column's value at
// one ComponentIndex, used by tests and engine.Debug() the way the
// teacher's runtime/state/serialize.go dumps component state to JSON for
// introspection.
type Snapshot struct {
	Index   int    `json:"index"`
	Kind    string `json:"kind"`
	Parent  int    `json:"parent"`
	Visible bool   `json:"visible"`
	ID      string `json:"id"`

	Width  string `json:"width"`
	Height string `json:"height"`

	FlexDirection string  `json:"flexDirection"`
	FlexGrow      float32 `json:"flexGrow"`
	FlexShrink    float32 `json:"flexShrink"`

	Content string `json:"content,omitempty"`

	ScrollOffsetX int  `json:"scrollOffsetX"`
	ScrollOffsetY int  `json:"scrollOffsetY"`
	Focusable     bool `json:"focusable"`
	TabIndex      int  `json:"tabIndex"`
}

func dimString(d interface{ IsAuto() bool }) string {
	if d.IsAuto() {
		return "auto"
	}
	return "set"
}

// Snapshot serializes component i's columns into a Snapshot value.
func (s *Store) Snapshot(i registry.ComponentIndex) Snapshot {
	return Snapshot{
		Index:         int(i),
		Kind:          s.Core.Kind.Get(int(i)).String(),
		Parent:        int(s.Core.Parent.Peek(i)),
		Visible:       s.Core.Visible.Peek(i),
		ID:            s.Core.ID.Peek(i),
		Width:         dimString(s.Dim.Width.Peek(i)),
		Height:        dimString(s.Dim.Height.Peek(i)),
		FlexDirection: s.Layout.FlexDirection.Peek(i).String(),
		FlexGrow:      s.Layout.FlexGrow.Peek(i),
		FlexShrink:    s.Layout.FlexShrink.Peek(i),
		Content:       s.Text.Content.Peek(i),
		ScrollOffsetX: s.Interact.ScrollOffsetX.Peek(i),
		ScrollOffsetY: s.Interact.ScrollOffsetY.Peek(i),
		Focusable:     s.Interact.Focusable.Peek(int(i)),
		TabIndex:      s.Interact.TabIndex.Peek(int(i)),
	}
}

// SnapshotJSON marshals Snapshot(i) to a compact JSON string.
func (s *Store) SnapshotJSON(i registry.ComponentIndex) (string, error) {
	b, err := snapshotJSON.Marshal(s.Snapshot(i))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
