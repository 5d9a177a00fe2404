// The flexdemo command lays out a small row of boxes — two fixed-size
// leaves and, when a TrueType font path is given, a wrapped text leaf
// measured against real glyph metrics — and prints each box's resolved
// position and size.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/krispeckt/boxflex/layout"
	"github.com/krispeckt/boxflex/textmeasure"
)

func main() {
	fontPath := flag.String("font", "", "path to a .ttf file; when set, a wrapped text leaf is added to the demo")
	width := flag.Float64("width", 400, "container width in pixels")
	height := flag.Float64("height", 200, "container height in pixels")
	flag.Parse()

	root := layout.New()
	root.SetFlexDirection(layout.FlexDirectionRow)
	root.SetJustifyContent(layout.JustifySpaceBetween)
	root.SetPadding(layout.EdgeAll, 8)
	root.SetWidth(layout.Value(*width))
	root.SetHeight(layout.Value(*height))

	sidebar := layout.New()
	sidebar.SetWidth(80)
	sidebar.SetHeight(layout.Value(*height) - 16)
	root.InsertChild(sidebar, 0)

	if *fontPath != "" {
		font, err := textmeasure.LoadFont(*fontPath, 18)
		if err != nil {
			log.Fatalf("loading font: %v", err)
		}
		textLeaf := layout.New()
		textLeaf.SetFlexGrow(1)
		textLeaf.SetIsTextNode(true)
		textLeaf.SetMeasureFunc(textmeasure.NewMeasureFunc(&textmeasure.TextNode{
			Text:       "boxflex lays out this label by wrapping it against real glyph metrics.",
			Font:       font,
			WrapMode:   textmeasure.WrapByWord,
			WrapSymbol: "-",
		}))
		root.InsertChild(textLeaf, 1)
	}

	footer := layout.New()
	footer.SetWidth(60)
	footer.SetHeight(30)
	root.InsertChild(footer, root.ChildCount())

	layout.Calculate(root, layout.Undefined, layout.Undefined, layout.DirectionLTR)

	printNode(os.Stdout, root, 0)
}

func printNode(w *os.File, n *layout.Node, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	fmt.Fprintf(w, "%sleft=%.1f top=%.1f width=%.1f height=%.1f\n",
		indent, n.GetLeft(), n.GetTop(), n.GetWidth(), n.GetHeight())
	for i := 0; i < n.ChildCount(); i++ {
		printNode(w, n.GetChild(i), depth+1)
	}
}
