package patch

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaCUE []byte

//go:embed patches.cue
var registryCUE []byte

// Registry returns the built-in descriptors in declaration order.
// Every record is validated against #Patch before it is returned.
func Registry() ([]Descriptor, error) {
	return Parse(registryCUE, "patches.cue")
}

// Parse compiles CUE source holding a "patches" list, unifies it with the
// #Patch schema and decodes it.
func Parse(src []byte, filename string) ([]Descriptor, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling patch schema: %w", err)
	}

	data := ctx.CompileBytes(src, cue.Filename(filename))
	if err := data.Err(); err != nil {
		return nil, fmt.Errorf("compiling patch registry: %w", err)
	}

	v := schema.Unify(data)
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("patch registry %s: %w", filename, err)
	}

	list := v.LookupPath(cue.ParsePath("patches"))
	if !list.Exists() {
		return nil, fmt.Errorf("patch registry %s: no patches field", filename)
	}
	if err := list.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validating patch registry: %w", err)
	}

	var ds []Descriptor
	if err := list.Decode(&ds); err != nil {
		return nil, fmt.Errorf("decoding patch registry: %w", err)
	}
	if len(ds) == 0 {
		return nil, fmt.Errorf("patch registry %s: no patches declared", filename)
	}

	seen := make(map[string]bool, len(ds))
	for _, d := range ds {
		if seen[d.ID] {
			return nil, fmt.Errorf("patch registry %s: duplicate id %q", filename, d.ID)
		}
		seen[d.ID] = true
	}

	return ds, nil
}
