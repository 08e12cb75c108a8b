package classify

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// exportSet summarises the top-level export statements of one file.
type exportSet struct {
	action        bool
	loader        bool
	defaultExport bool

	// syntaxError is the position of the first ERROR or MISSING node.
	syntaxError *sitter.Point
}

// languageFor picks the grammar by extension. Plain .js and .jsx files are
// parsed with TSX, which accepts both JSX and type annotations.
func languageFor(path string) *sitter.Language {
	if strings.EqualFold(filepath.Ext(path), ".ts") {
		return typescript.GetLanguage()
	}
	return tsx.GetLanguage()
}

// scanExports parses content and records action, loader and default exports
// found among the root's direct children. A tree with syntax errors is still
// scanned; tree-sitter recovers around the broken region.
func scanExports(ctx context.Context, path string, content []byte) (exportSet, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(languageFor(path))

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return exportSet{}, err
	}
	if tree == nil {
		return exportSet{}, fmt.Errorf("parse %s: no syntax tree", path)
	}
	defer tree.Close()

	root := tree.RootNode()

	var set exportSet
	if root.HasError() {
		if bad := firstErrorNode(root); bad != nil {
			p := bad.StartPoint()
			set.syntaxError = &p
		}
	}

	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		if node.Type() == "export_statement" {
			set.visitExport(node, content)
		}
	}
	return set, nil
}

func (s *exportSet) visitExport(node *sitter.Node, src []byte) {
	isDefault := false
	for i := 0; i < int(node.ChildCount()); i++ {
		c := node.Child(i)
		if !c.IsNamed() && c.Type() == "default" {
			isDefault = true
			break
		}
	}

	decl := node.ChildByFieldName("declaration")
	if decl == nil {
		value := node.ChildByFieldName("value")
		switch {
		case isDefault && value != nil:
			// export default <expression>; an anonymous class is still a class.
			s.defaultExport = value.Type() != "class"
		default:
			s.visitClause(node, src)
		}
		return
	}

	switch decl.Type() {
	case "function_declaration", "generator_function_declaration", "function_signature":
		if name := decl.ChildByFieldName("name"); name != nil {
			s.markName(name.Content(src))
		}
		// Default classes, interfaces and enums are not components.
		if isDefault {
			s.defaultExport = true
		}

	case "lexical_declaration", "variable_declaration":
		for j := 0; j < int(decl.NamedChildCount()); j++ {
			d := decl.NamedChild(j)
			if d.Type() != "variable_declarator" {
				continue
			}
			// Destructuring patterns are not bindings named action or loader.
			if name := d.ChildByFieldName("name"); name != nil && name.Type() == "identifier" {
				s.markName(name.Content(src))
			}
		}
	}
}

// visitClause handles export { a, b as c } lists, with or without a
// from clause. The exported name is the alias when one is given.
func (s *exportSet) visitClause(node *sitter.Node, src []byte) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		clause := node.NamedChild(i)
		if clause.Type() != "export_clause" {
			continue
		}
		for j := 0; j < int(clause.NamedChildCount()); j++ {
			spec := clause.NamedChild(j)
			if spec.Type() != "export_specifier" {
				continue
			}
			name := spec.ChildByFieldName("alias")
			if name == nil {
				name = spec.ChildByFieldName("name")
			}
			if name != nil {
				s.markName(name.Content(src))
			}
		}
	}
}

func (s *exportSet) markName(name string) {
	switch name {
	case "action":
		s.action = true
	case "loader":
		s.loader = true
	case "default":
		s.defaultExport = true
	}
}

// firstErrorNode returns the first ERROR or MISSING node in document order.
func firstErrorNode(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstErrorNode(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}
