package menu

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"orderbot/pkg"

	"github.com/BurntSushi/toml"
	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"
	"gopkg.in/yaml.v3"
)

// record is one dish as it appears in the source, before validation
type record struct {
	name   string
	fields map[string]any
}

// Load reads a menu file. The format is picked from the extension
// (.json, .yaml, .yml, .toml). Dish order follows the file.
func Load(path string) (*pkg.Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading menu file: %w", err)
	}

	var records []record
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		records, err = decodeJSON(data)
	case ".yaml", ".yml":
		records, err = decodeYAML(data)
	case ".toml":
		records, err = decodeTOML(data)
	default:
		return nil, fmt.Errorf("unsupported menu format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing menu %s: %w", path, err)
	}

	return build(records)
}

// decodeJSON walks the top-level object with sonic's AST so key order survives
func decodeJSON(data []byte) ([]record, error) {
	// sonic.Get parses lazily and stops after the first value
	if !sonic.Valid(data) {
		return nil, fmt.Errorf("invalid JSON")
	}

	root, err := sonic.Get(data)
	if err != nil {
		return nil, err
	}
	if root.TypeSafe() != ast.V_OBJECT {
		return nil, fmt.Errorf("menu must be an object of dishes")
	}

	it, err := root.Properties()
	if err != nil {
		return nil, err
	}

	var records []record
	var pair ast.Pair
	for it.Next(&pair) {
		if pair.Value.TypeSafe() != ast.V_OBJECT {
			return nil, fmt.Errorf("dish %q must be an object", pair.Key)
		}
		fields, err := pair.Value.Map()
		if err != nil {
			return nil, fmt.Errorf("dish %q: %w", pair.Key, err)
		}
		records = append(records, record{name: pair.Key, fields: fields})
	}
	return records, nil
}

// decodeYAML uses yaml.Node, whose mapping content keeps source order
func decodeYAML(data []byte) ([]record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("menu is empty")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("menu must be a mapping of dishes")
	}

	var records []record
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("dish %q must be a mapping", key.Value)
		}
		var fields map[string]any
		if err := value.Decode(&fields); err != nil {
			return nil, fmt.Errorf("dish %q: %w", key.Value, err)
		}
		records = append(records, record{name: key.Value, fields: fields})
	}
	return records, nil
}

// decodeTOML expects one table per dish; MetaData.Keys reports them in file order
func decodeTOML(data []byte) ([]record, error) {
	var raw map[string]map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	var records []record
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue
		}
		name := key[0]
		records = append(records, record{name: name, fields: raw[name]})
	}
	return records, nil
}

func build(records []record) (*pkg.Menu, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("menu has no dishes")
	}

	items := make([]pkg.MenuItem, 0, len(records))
	for _, r := range records {
		item, err := toItem(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return pkg.NewMenu(items)
}

func toItem(r record) (pkg.MenuItem, error) {
	name := strings.TrimSpace(r.name)
	if name == "" {
		return pkg.MenuItem{}, fmt.Errorf("dish with empty name")
	}

	rawType, ok := r.fields["type"].(string)
	if !ok || strings.TrimSpace(rawType) == "" {
		return pkg.MenuItem{}, fmt.Errorf("dish %q: missing type", name)
	}

	item := pkg.MenuItem{
		Name:    name,
		Type:    pkg.DietType(strings.ToLower(strings.TrimSpace(rawType))),
		Details: make(map[string]any),
	}

	if rawPrice, exists := r.fields["price"]; exists {
		price, err := toFloat(rawPrice)
		if err != nil {
			return pkg.MenuItem{}, fmt.Errorf("dish %q: %w", name, err)
		}
		item.Price = price
	}

	for k, v := range r.fields {
		if k == "type" || k == "price" {
			continue
		}
		item.Details[k] = v
	}

	return item, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	default:
		return 0, fmt.Errorf("invalid price %v", v)
	}
}
