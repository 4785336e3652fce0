package tree

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Tree Serialization API
// =============================================================================

// MarshalTree serializes a tree to pretty-printed JSON bytes.
func MarshalTree(n *Node) ([]byte, error) {
	return json.MarshalIndent(n, "", "  ")
}

// UnmarshalTree deserializes JSON bytes into a tree.
// Only the JSON syntax is checked here; shape validation belongs to the
// hierarchy builder.
func UnmarshalTree(data []byte) (*Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("unmarshal tree: %w", err)
	}
	if n.Name == "" {
		n.Name = RootName
	}
	return &n, nil
}

// WriteTree writes a tree as JSON to w.
func WriteTree(n *Node, w io.Writer) error {
	data, err := MarshalTree(n)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadTree reads a JSON tree from r.
func ReadTree(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read tree: %w", err)
	}
	return UnmarshalTree(data)
}

// WriteTreeFile writes a tree to a JSON file.
func WriteTreeFile(n *Node, path string) error {
	data, err := MarshalTree(n)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadTreeFile reads a tree from a JSON file.
func ReadTreeFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalTree(data)
}

// =============================================================================
// Frame Serialization API
// =============================================================================

// MarshalFrame serializes a Frame to pretty-printed JSON bytes.
func MarshalFrame(f Frame) ([]byte, error) {
	return json.MarshalIndent(f, "", "  ")
}

// UnmarshalFrame deserializes JSON bytes into a Frame.
func UnmarshalFrame(data []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("unmarshal frame: %w", err)
	}
	if f.VizType == "" {
		f.VizType = VizTypeSunburst
	}
	if f.Radius <= 0 {
		return Frame{}, fmt.Errorf("frame must have a positive radius")
	}
	return f, nil
}
