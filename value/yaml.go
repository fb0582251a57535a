package value

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasfidelity/oaserrors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DecodeYAML reads the first YAML document in data.
//
// Resolved scalar tags pick the variant: !!null, !!bool, !!int and !!float
// become Null, Bool and Number; every other tag (strings, timestamps, binary,
// custom tags) becomes String holding the source text. Integers are
// normalized to decimal. Infinities and NaN have no JSON number form and are
// kept as strings. Aliases are expanded and "<<" merge keys are applied
// without overriding keys written explicitly in the mapping.
// Empty input decodes to Null.
func DecodeYAML(data []byte, limits Limits) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &oaserrors.ParseError{
			Line:    parseYAMLLine(err.Error()),
			Message: "invalid YAML",
			Cause:   err,
		}
	}
	c := &yamlConverter{
		maxDepth:   limits.maxDepth(),
		maxAliases: limits.maxAliases(),
	}
	return c.convert(&doc, 0)
}

type yamlConverter struct {
	maxDepth   int
	maxAliases int
	aliases    int
}

func (c *yamlConverter) convert(n *yaml.Node, depth int) (Value, error) {
	switch n.Kind {
	case 0:
		return Null{}, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null{}, nil
		}
		return c.convert(n.Content[0], depth)
	case yaml.MappingNode:
		return c.mapping(n, depth+1)
	case yaml.SequenceNode:
		if c.maxDepth > 0 && depth+1 > c.maxDepth {
			return nil, depthError(c.maxDepth, depth+1)
		}
		seq := make(Seq, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := c.convert(item, depth+1)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}
		return seq, nil
	case yaml.AliasNode:
		if err := c.expand(n); err != nil {
			return nil, err
		}
		return c.convert(n.Alias, depth)
	case yaml.ScalarNode:
		return scalar(n), nil
	}
	return nil, &oaserrors.ParseError{
		Line:    n.Line,
		Column:  n.Column,
		Message: fmt.Sprintf("unsupported YAML node kind %v", n.Kind),
	}
}

func (c *yamlConverter) expand(n *yaml.Node) error {
	c.aliases++
	if c.maxAliases > 0 && c.aliases > c.maxAliases {
		return &oaserrors.ResourceLimitError{
			ResourceType: "alias_expansions",
			Limit:        int64(c.maxAliases),
			Actual:       int64(c.aliases),
			Message:      "too many YAML alias expansions",
		}
	}
	if n.Alias == nil {
		return &oaserrors.ParseError{Line: n.Line, Column: n.Column, Message: "unresolved alias " + n.Value}
	}
	return nil
}

func (c *yamlConverter) mapping(n *yaml.Node, depth int) (Value, error) {
	if c.maxDepth > 0 && depth > c.maxDepth {
		return nil, depthError(c.maxDepth, depth)
	}
	m := NewMap()
	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge" {
			merges = append(merges, v)
			continue
		}
		key, err := c.key(k)
		if err != nil {
			return nil, err
		}
		val, err := c.convert(v, depth)
		if err != nil {
			return nil, err
		}
		m.Set(key, val)
	}
	for _, src := range merges {
		if err := c.merge(m, src, depth); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// merge copies entries from a merge source into m, skipping keys m already
// has. The source is a mapping, an alias to one, or a sequence of those.
func (c *yamlConverter) merge(m *Map, src *yaml.Node, depth int) error {
	if src.Kind == yaml.SequenceNode {
		for _, item := range src.Content {
			if err := c.merge(m, item, depth); err != nil {
				return err
			}
		}
		return nil
	}
	v, err := c.convert(src, depth-1)
	if err != nil {
		return err
	}
	from, ok := v.(*Map)
	if !ok {
		return &oaserrors.ParseError{Line: src.Line, Column: src.Column, Message: "merge value must be a mapping"}
	}
	for k, item := range from.All() {
		if !m.Has(k) {
			m.Set(k, item)
		}
	}
	return nil
}

func (c *yamlConverter) key(k *yaml.Node) (string, error) {
	if k.Kind == yaml.AliasNode {
		if err := c.expand(k); err != nil {
			return "", err
		}
		k = k.Alias
	}
	if k.Kind != yaml.ScalarNode {
		return "", &oaserrors.ParseError{
			Line:    k.Line,
			Column:  k.Column,
			Message: "mapping keys must be scalars",
		}
	}
	return k.Value, nil
}

func scalar(n *yaml.Node) Value {
	switch n.ShortTag() {
	case "!!null":
		return Null{}
	case "!!bool":
		return Bool(strings.EqualFold(n.Value, "true"))
	case "!!int":
		return yamlInt(n.Value)
	case "!!float":
		return yamlFloat(n.Value)
	default:
		return String(n.Value)
	}
}

func yamlInt(lit string) Value {
	clean := strings.ReplaceAll(lit, "_", "")
	if i, err := strconv.ParseInt(clean, 0, 64); err == nil {
		return Int(i)
	}
	var b big.Int
	if _, ok := b.SetString(clean, 0); ok {
		return Number(b.String())
	}
	return String(lit)
}

func yamlFloat(lit string) Value {
	if Number(lit).Valid() {
		return Number(lit)
	}
	switch strings.ToLower(strings.TrimLeft(lit, "+-")) {
	case ".inf", ".nan":
		return String(lit)
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(lit, "_", ""), 64)
	if err != nil {
		return String(lit)
	}
	return Float(f)
}
