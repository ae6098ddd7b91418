package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/scenegraph"
	"github.com/viant/scenegraph/bounds"
	"github.com/viant/scenegraph/export/json"
	"github.com/viant/scenegraph/export/xml"
	"github.com/viant/scenegraph/format/text"
	"github.com/viant/scenegraph/loader"
	"github.com/viant/scenegraph/visitor"
	"go.uber.org/zap"
)

func loadScene(location string) (scenegraph.Component, error) {
	logger.Debug("Loading scene", zap.String("path", location))
	component, err := loader.Load(location)
	if err != nil {
		return nil, err
	}
	logger.Debug("Scene loaded", zap.Stringer("kind", component.Kind()), zap.Int("children", len(component.Children())))
	return component, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	component, err := loadScene(args[0])
	if err != nil {
		return err
	}
	textCase := text.CaseFormat(caseFormat)
	if caseFormat != "" && !textCase.IsDefined() {
		return fmt.Errorf("unsupported case format: %v", caseFormat)
	}
	logger.Info("Exporting scene", zap.String("format", format), zap.String("case", caseFormat))
	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "xml":
		result, err := xml.New(xml.WithCaseFormat(textCase)).Export(component)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, result)
		return err
	case "json":
		if err = json.NewEncoder(out, json.WithCaseFormat(textCase)).Encode(component); err != nil {
			return err
		}
		_, err = fmt.Fprintln(out)
		return err
	}
	return fmt.Errorf("unsupported format: %v", format)
}

func runBounds(cmd *cobra.Command, args []string) error {
	component, err := loadScene(args[0])
	if err != nil {
		return err
	}
	box, err := bounds.Of(component)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if box == nil {
		_, err = fmt.Fprintln(out, "empty")
		return err
	}
	_, err = fmt.Fprintf(out, "%v %v %v %v\n", box.LLx, box.LLy, box.URx, box.URy)
	return err
}

func runInspect(cmd *cobra.Command, args []string) error {
	component, err := loadScene(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	return visitor.DepthFirst(component)(func(depth int, node scenegraph.Component) (bool, error) {
		line, err := scenegraph.Export[string](node, outline{})
		if err != nil {
			return false, err
		}
		_, err = fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", depth), line)
		return err == nil, err
	})
}

// outline describes a single node on one line, children are not exported
type outline struct{}

func (o outline) ExportPage(page *scenegraph.Page) (string, error) {
	return o.container(page), nil
}

func (o outline) ExportCompoundShape(shape *scenegraph.CompoundShape) (string, error) {
	return o.container(shape), nil
}

func (o outline) ExportCircle(circle *scenegraph.Circle) (string, error) {
	center := circle.Center()
	return fmt.Sprintf("%v center=(%v,%v) radius=%v", circle.Kind(), center.X, center.Y, circle.Radius()), nil
}

func (o outline) ExportRectangle(rectangle *scenegraph.Rectangle) (string, error) {
	position := rectangle.Position()
	return fmt.Sprintf("%v position=(%v,%v) size=%vx%v", rectangle.Kind(), position.X, position.Y, rectangle.Width(), rectangle.Height()), nil
}

func (o outline) container(component scenegraph.Component) string {
	return fmt.Sprintf("%v (%d)", component.Kind(), len(component.Children()))
}
