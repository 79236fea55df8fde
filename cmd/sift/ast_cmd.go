package main

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/deepnoodle-ai/wonton/tui"

	"github.com/sift-js/sift/ast"
	"github.com/sift-js/sift/parser"
)

func astHandler(ctx *cli.Context) error {
	setupLogging(ctx)

	code, filename, err := getCode(ctx)
	if err != nil {
		return err
	}

	var opts []parser.Option
	if filename != "" {
		opts = append(opts, parser.WithFilename(filename))
	}
	program, err := parser.Parse(ctx.Context(), code, opts...)
	if err != nil {
		return formatParseError(ctx, err)
	}

	if ctx.String("output") == "json" {
		out, err := formatOutput(ctx, nodeToJSON(program))
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	printAST(program)
	return nil
}

// ASTNode represents a node in the JSON AST output
type ASTNode struct {
	Type     string     `json:"type"`
	Value    any        `json:"value,omitempty"`
	Children []*ASTNode `json:"children,omitempty"`
}

func nodeToJSON(node ast.Node) *ASTNode {
	if node == nil {
		return nil
	}

	typeName := reflect.TypeOf(node).Elem().Name()
	result := &ASTNode{Type: typeName}
	addChild := func(n ast.Node) {
		if child := nodeToJSON(n); child != nil {
			result.Children = append(result.Children, child)
		}
	}

	switch n := node.(type) {
	case *ast.Program:
		for _, stmt := range n.Stmts {
			addChild(stmt)
		}

	case *ast.Ident:
		result.Value = n.Name

	case *ast.Number:
		result.Value = n.Value

	case *ast.Bool:
		result.Value = n.Value

	case *ast.String:
		result.Value = n.Value

	case *ast.Template:
		result.Value = n.Literal

	case *ast.Regex:
		result.Value = n.Literal

	case *ast.VarDecl:
		result.Value = fmt.Sprintf("%s %s", n.Kind, n.Name.Name)
		addChild(n.Value)

	case *ast.Assign:
		result.Value = n.Op
		addChild(n.X)
		addChild(n.Y)

	case *ast.Infix:
		result.Value = n.Op
		addChild(n.X)
		addChild(n.Y)

	case *ast.Prefix:
		result.Value = n.Op
		addChild(n.X)

	case *ast.Postfix:
		result.Value = n.Op
		addChild(n.X)

	case *ast.Ternary:
		addChild(n.Cond)
		addChild(n.IfTrue)
		addChild(n.IfFalse)

	case *ast.Call:
		addChild(n.Fun)
		for _, arg := range n.Args {
			addChild(arg)
		}

	case *ast.Member:
		if n.Computed {
			addChild(n.X)
			addChild(n.Index)
		} else {
			result.Value = n.Attr.Name
			addChild(n.X)
		}

	case *ast.New:
		addChild(n.X)

	case *ast.Spread:
		addChild(n.X)

	case *ast.Func:
		if n.Name != nil {
			result.Value = n.Name.Name
		}
		for _, param := range n.Params {
			addChild(param)
		}
		addChild(n.Body)

	case *ast.Return:
		if n.Value != nil {
			addChild(n.Value)
		}

	case *ast.ExprStmt:
		addChild(n.X)

	case *ast.Block:
		for _, stmt := range n.Stmts {
			addChild(stmt)
		}

	case *ast.If:
		result.Children = append(result.Children, &ASTNode{
			Type:     "Condition",
			Children: []*ASTNode{nodeToJSON(n.Cond)},
		})
		result.Children = append(result.Children, &ASTNode{
			Type:     "Then",
			Children: []*ASTNode{nodeToJSON(n.Consequence)},
		})
		if n.Alternative != nil {
			result.Children = append(result.Children, &ASTNode{
				Type:     "Else",
				Children: []*ASTNode{nodeToJSON(n.Alternative)},
			})
		}

	case *ast.Import:
		result.Value = n.Path.Value
		if n.Default != nil {
			addChild(n.Default)
		}
		if n.Star != nil {
			addChild(n.Star)
		}
		for _, spec := range n.Named {
			addChild(spec.Name)
		}

	case *ast.Export:
		if n.Decl != nil {
			addChild(n.Decl)
		}
		if n.X != nil {
			addChild(n.X)
		}
		for _, spec := range n.Named {
			addChild(spec.Name)
		}
	}

	return result
}

// Color styles for AST display
var (
	nodeStyle    = tui.NewStyle().WithFgRGB(tui.RGB{R: 100, G: 200, B: 255}).WithBold()
	fieldStyle   = tui.NewStyle().WithFgRGB(tui.RGB{R: 180, G: 140, B: 220})
	valueStyle   = tui.NewStyle().WithFgRGB(tui.RGB{R: 150, G: 220, B: 150})
	literalStyle = tui.NewStyle().WithFgRGB(tui.RGB{R: 255, G: 200, B: 100})
	mutedStyle   = tui.NewStyle().WithFgRGB(tui.RGB{R: 120, G: 120, B: 130})
)

// printLine prints a tui.View followed by a newline
func printLine(view tui.View) {
	tui.Print(view)
	fmt.Println()
}

func printAST(program *ast.Program) {
	printLine(tui.Text("Program").Style(nodeStyle))
	for i, stmt := range program.Stmts {
		isLast := i == len(program.Stmts)-1
		printNode(stmt, "  ", isLast)
	}
}

func printNode(node ast.Node, indent string, isLast bool) {
	if node == nil {
		return
	}

	connector := "├─ "
	childIndent := indent + "│  "
	if isLast {
		connector = "└─ "
		childIndent = indent + "   "
	}

	typeName := reflect.TypeOf(node).Elem().Name()
	header := func(detail tui.View) {
		views := []tui.View{
			tui.Text("%s%s", indent, connector).Style(mutedStyle),
			tui.Text("%s", typeName).Style(nodeStyle),
		}
		if detail != nil {
			views = append(views, detail)
		}
		printLine(tui.Group(views...))
	}

	switch n := node.(type) {
	case *ast.Ident:
		header(tui.Text(" %q", n.Name).Style(literalStyle))

	case *ast.Number:
		header(tui.Text(" %g", n.Value).Style(literalStyle))

	case *ast.Bool:
		header(tui.Text(" %v", n.Value).Style(literalStyle))

	case *ast.String:
		val := n.Value
		if len(val) > 30 {
			val = val[:27] + "..."
		}
		header(tui.Text(" %q", val).Style(literalStyle))

	case *ast.Template:
		header(tui.Text(" `%s`", n.Literal).Style(literalStyle))

	case *ast.Regex:
		header(tui.Text(" %s", n.Literal).Style(literalStyle))

	case *ast.Null, *ast.Undefined:
		header(nil)

	case *ast.VarDecl:
		header(tui.Text(" %s %s", n.Kind, n.Name.Name).Style(valueStyle))
		printNode(n.Value, childIndent, true)

	case *ast.Assign:
		header(tui.Text(" %s", n.Op).Style(fieldStyle))
		printNode(n.X, childIndent, false)
		printNode(n.Y, childIndent, true)

	case *ast.Infix:
		header(tui.Text(" %s", n.Op).Style(fieldStyle))
		printNode(n.X, childIndent, false)
		printNode(n.Y, childIndent, true)

	case *ast.Prefix:
		header(tui.Text(" %s", n.Op).Style(fieldStyle))
		printNode(n.X, childIndent, true)

	case *ast.Postfix:
		header(tui.Text(" %s", n.Op).Style(fieldStyle))
		printNode(n.X, childIndent, true)

	case *ast.Ternary:
		header(nil)
		printNode(n.Cond, childIndent, false)
		printNode(n.IfTrue, childIndent, false)
		printNode(n.IfFalse, childIndent, true)

	case *ast.Call:
		header(nil)
		printNode(n.Fun, childIndent, len(n.Args) == 0)
		for i, arg := range n.Args {
			printNode(arg, childIndent, i == len(n.Args)-1)
		}

	case *ast.Member:
		if n.Computed {
			header(tui.Text(" [computed]").Style(fieldStyle))
			printNode(n.X, childIndent, false)
			printNode(n.Index, childIndent, true)
		} else {
			marker := "."
			if n.Optional {
				marker = "?."
			}
			header(tui.Text(" %s%s", marker, n.Attr.Name).Style(fieldStyle))
			printNode(n.X, childIndent, true)
		}

	case *ast.New:
		header(nil)
		printNode(n.X, childIndent, true)

	case *ast.Spread:
		header(nil)
		printNode(n.X, childIndent, true)

	case *ast.Func:
		name := "<anonymous>"
		if n.Name != nil {
			name = n.Name.Name
		}
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Name
		}
		header(tui.Text(" %s(%s)", name, strings.Join(params, ", ")).Style(valueStyle))
		printNode(n.Body, childIndent, true)

	case *ast.Return:
		header(nil)
		if n.Value != nil {
			printNode(n.Value, childIndent, true)
		}

	case *ast.ExprStmt:
		printNode(n.X, indent, isLast)

	case *ast.Block:
		header(tui.Text(" (%d stmts)", len(n.Stmts)).Style(mutedStyle))
		for i, stmt := range n.Stmts {
			printNode(stmt, childIndent, i == len(n.Stmts)-1)
		}

	case *ast.If:
		header(nil)
		printBranch("condition", n.Cond, childIndent, false)
		printBranch("then", n.Consequence, childIndent, n.Alternative == nil)
		if n.Alternative != nil {
			printBranch("else", n.Alternative, childIndent, true)
		}

	case *ast.Import:
		header(tui.Text(" %q", n.Path.Value).Style(literalStyle))
		if n.Default != nil {
			printNode(n.Default, childIndent, n.Star == nil && len(n.Named) == 0)
		}
		if n.Star != nil {
			printNode(n.Star, childIndent, len(n.Named) == 0)
		}
		for i, spec := range n.Named {
			printNode(spec.Name, childIndent, i == len(n.Named)-1)
		}

	case *ast.Export:
		header(nil)
		if n.Decl != nil {
			printNode(n.Decl, childIndent, true)
		}
		if n.X != nil {
			printNode(n.X, childIndent, true)
		}
		for i, spec := range n.Named {
			printNode(spec.Name, childIndent, i == len(n.Named)-1)
		}

	default:
		header(nil)
	}
}

// printBranch prints a labeled branch of a control-flow node.
func printBranch(label string, node ast.Node, indent string, isLast bool) {
	connector := "├─ "
	childIndent := indent + "│  "
	if isLast {
		connector = "└─ "
		childIndent = indent + "   "
	}
	printLine(tui.Group(
		tui.Text("%s%s", indent, connector).Style(mutedStyle),
		tui.Text("%s", label).Style(fieldStyle),
	))
	printNode(node, childIndent, true)
}
