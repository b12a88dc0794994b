package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/gamemaker/project"
)

// rowEntry is a small value used by the UI lists to represent one resource.
type rowEntry struct {
	Index int
	Name  string
}

// collectionList wraps a widget.List over one resource collection.
type collectionList struct {
	list    *widget.List
	entries []any
	// suppress, when true, causes the selection handler to ignore
	// programmatic selections so they aren't treated as user clicks.
	suppress bool
}

func (cl *collectionList) SetRows(names []string) {
	if cl == nil || cl.list == nil {
		return
	}
	cl.suppress = true
	entries := make([]any, len(names))
	for i, name := range names {
		entries[i] = rowEntry{Index: i, Name: name}
	}
	cl.entries = entries
	cl.list.SetEntries(entries)
	cl.suppress = false
}

func (cl *collectionList) SetSelected(idx *int) {
	if cl == nil || cl.list == nil || idx == nil {
		return
	}
	if *idx < 0 || *idx >= len(cl.entries) {
		return
	}
	cl.suppress = true
	cl.list.SetSelectedEntry(cl.entries[*idx])
	cl.suppress = false
}

// Selected returns the index of the selected row, if any.
func (cl *collectionList) Selected() (int, bool) {
	if cl == nil || cl.list == nil {
		return 0, false
	}
	if e, ok := cl.list.SelectedEntry().(rowEntry); ok {
		return e.Index, true
	}
	return 0, false
}

// Panel holds the four resource lists of the left panel.
type Panel struct {
	backgrounds *collectionList
	sprites     *collectionList
	objects     *collectionList
	levels      *collectionList
}

// Refresh rebuilds every list from the document and re-applies its selection.
func (p *Panel) Refresh(d *project.Document) {
	names := make([]string, len(d.Backgrounds))
	for i, bg := range d.Backgrounds {
		names[i] = fmt.Sprintf("%s [%s]", bg.Name, bg.Mode)
	}
	p.backgrounds.SetRows(names)
	p.backgrounds.SetSelected(d.Selection.Background)

	names = make([]string, len(d.Sprites))
	for i, s := range d.Sprites {
		w, h := s.Image.Size()
		names[i] = fmt.Sprintf("%s %dx%d", s.Name, w, h)
	}
	p.sprites.SetRows(names)

	names = make([]string, len(d.Objects))
	for i, o := range d.Objects {
		if o.SpriteIndex != nil && *o.SpriteIndex < len(d.Sprites) {
			names[i] = fmt.Sprintf("%s (%s)", o.Name, d.Sprites[*o.SpriteIndex].Name)
		} else {
			names[i] = o.Name
		}
	}
	p.objects.SetRows(names)
	p.objects.SetSelected(d.Selection.Object)

	names = make([]string, len(d.Levels))
	for i, l := range d.Levels {
		names[i] = fmt.Sprintf("%s %dx%d", l.Name, l.Width, l.Height)
	}
	p.levels.SetRows(names)
	p.levels.SetSelected(d.Selection.Level)
}

// sectionButton is one button in a section's button rows. OnClick receives
// the currently selected row, ok=false when nothing is selected.
type sectionButton struct {
	Label   string
	OnClick func(selected int, ok bool)
}

func addCollectionSection(
	parent *widget.Container,
	theme *widget.Theme,
	fontFace *text.Face,
	title string,
	cl *collectionList,
	onSelected func(index int),
	buttonRows [][]sectionButton,
) {
	label := widget.NewLabel(
		widget.LabelOpts.Text(title, fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	)
	parent.AddChild(label)

	list := widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if entry, ok := e.(rowEntry); ok {
				return fmt.Sprintf("%d. %s", entry.Index+1, entry.Name)
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if cl.suppress {
				return
			}
			entry, ok := args.Entry.(rowEntry)
			if !ok {
				return
			}
			if onSelected != nil {
				onSelected(entry.Index)
			}
		}),
	)
	parent.AddChild(list)
	cl.list = list

	for _, row := range buttonRows {
		buttonsRow := widget.NewContainer(
			widget.ContainerOpts.Layout(
				widget.NewRowLayout(
					widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
					widget.RowLayoutOpts.Spacing(6),
				),
			),
		)
		for _, b := range row {
			onClick := b.OnClick
			btn := widget.NewButton(
				widget.ButtonOpts.Image(theme.ButtonTheme.Image),
				widget.ButtonOpts.Text(b.Label, fontFace, theme.ButtonTheme.TextColor),
				widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
					if onClick == nil {
						return
					}
					i, ok := cl.Selected()
					onClick(i, ok)
				}),
			)
			buttonsRow.AddChild(btn)
		}
		parent.AddChild(buttonsRow)
	}
}

// buildEditorUI assembles the left panel and returns the composed UI.
func buildEditorUI(e *Editor) (*ebitenui.UI, *Panel) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	panel := &Panel{
		backgrounds: &collectionList{},
		sprites:     &collectionList{},
		objects:     &collectionList{},
		levels:      &collectionList{},
	}

	leftPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftPanelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 40, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Left: 8, Right: 8, Bottom: 8}),
			),
		),
	)

	addCollectionSection(leftPanel, ui.PrimaryTheme, &fontFace, "Backgrounds",
		panel.backgrounds, e.selectBackground,
		[][]sectionButton{
			{
				{Label: "Add", OnClick: func(int, bool) { e.addBackground() }},
				{Label: "Rename", OnClick: e.renameBackground},
				{Label: "Del", OnClick: e.deleteBackground},
			},
			{
				{Label: "Up", OnClick: e.moveBackgroundUp},
				{Label: "Down", OnClick: e.moveBackgroundDown},
				{Label: "Color", OnClick: e.setBackgroundColor},
				{Label: "Image", OnClick: e.setBackgroundImage},
				{Label: "Tiled", OnClick: e.toggleBackgroundTiled},
			},
		})

	addCollectionSection(leftPanel, ui.PrimaryTheme, &fontFace, "Sprites",
		panel.sprites, nil,
		[][]sectionButton{
			{
				{Label: "Add", OnClick: func(int, bool) { e.addSprite() }},
				{Label: "Rename", OnClick: e.renameSprite},
				{Label: "Del", OnClick: e.deleteSprite},
			},
			{
				{Label: "Up", OnClick: e.moveSpriteUp},
				{Label: "Down", OnClick: e.moveSpriteDown},
				{Label: "Load", OnClick: e.loadSpriteImage},
			},
		})

	addCollectionSection(leftPanel, ui.PrimaryTheme, &fontFace, "Objects",
		panel.objects, e.selectObject,
		[][]sectionButton{
			{
				{Label: "Add", OnClick: func(int, bool) { e.addObject() }},
				{Label: "Rename", OnClick: e.renameObject},
				{Label: "Del", OnClick: e.deleteObject},
			},
			{
				{Label: "Up", OnClick: e.moveObjectUp},
				{Label: "Down", OnClick: e.moveObjectDown},
				{Label: "Sprite", OnClick: e.setObjectSprite},
			},
		})

	addCollectionSection(leftPanel, ui.PrimaryTheme, &fontFace, "Levels",
		panel.levels, e.selectLevel,
		[][]sectionButton{
			{
				{Label: "Add", OnClick: func(int, bool) { e.addLevel() }},
				{Label: "Rename", OnClick: e.renameLevel},
				{Label: "Del", OnClick: e.deleteLevel},
			},
			{
				{Label: "Up", OnClick: e.moveLevelUp},
				{Label: "Down", OnClick: e.moveLevelDown},
				{Label: "Size", OnClick: e.resizeLevel},
				{Label: "Bg", OnClick: e.setLevelBackground},
			},
		})

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	leftPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	root.AddChild(leftPanel)

	ui.Container = root
	return ui, panel
}
