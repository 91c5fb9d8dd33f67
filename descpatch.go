package treewire

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/treewire/go-treewire/desc"
)

// ApplyJSONPatch applies an RFC 6902 patch to the JSON wire form of a
// description and decodes the result back. The input description is not
// modified. Patches that produce a shape the description codec rejects
// (attributes on a text node, unknown kind codes) fail here rather than
// later in reconciliation.
func ApplyJSONPatch(d *desc.Node, patchData []byte) (*desc.Node, error) {
	doc, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.DecodePatch(patchData)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	out, err := patch.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	res := &desc.Node{}
	if err := json.Unmarshal(out, res); err != nil {
		return nil, fmt.Errorf("patched description: %w", err)
	}
	return res, nil
}

// ApplyMergePatch is the RFC 7386 counterpart of ApplyJSONPatch.
func ApplyMergePatch(d *desc.Node, patchData []byte) (*desc.Node, error) {
	doc, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(doc, patchData)
	if err != nil {
		return nil, fmt.Errorf("applying merge patch: %w", err)
	}
	res := &desc.Node{}
	if err := json.Unmarshal(out, res); err != nil {
		return nil, fmt.Errorf("patched description: %w", err)
	}
	return res, nil
}
