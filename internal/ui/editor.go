package ui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/nittu/baby-flashcards/internal/model"
	"github.com/nittu/baby-flashcards/internal/playlist"
)

// NewPlaylistIndex marks an editor creating a playlist rather than updating one
const NewPlaylistIndex = -1

// PlaylistEditor edits a playlist draft and saves it through the repository.
// The draft is a value; every slide operation replaces it.
type PlaylistEditor struct {
	window       fyne.Window
	repo         playlist.Repository
	localization *Localization
	logger       *slog.Logger
	onDone       func()

	index int
	draft model.Playlist

	nameEntry  *widget.Entry
	delayEntry *widget.Entry
	slideList  *widget.List
	countLabel *widget.Label
	addBtn     *widget.Button
	content    fyne.CanvasObject
}

// NewPlaylistEditor creates an editor for draft. index is the playlist's
// position when editing, or NewPlaylistIndex when creating.
func NewPlaylistEditor(window fyne.Window, repo playlist.Repository, localization *Localization, logger *slog.Logger, index int, draft model.Playlist, onDone func()) *PlaylistEditor {
	e := &PlaylistEditor{
		window:       window,
		repo:         repo,
		localization: localization,
		logger:       logger.With("component", "playlist_editor"),
		onDone:       onDone,
		index:        index,
		draft:        draft.Clone(),
	}
	e.createUI()
	return e
}

// Content returns the editor's root object
func (e *PlaylistEditor) Content() fyne.CanvasObject {
	return e.content
}

func (e *PlaylistEditor) createUI() {
	l := e.localization

	title := l.GetText(KeyCreatePlaylist)
	if e.index != NewPlaylistIndex {
		title = l.GetText(KeyEditPlaylist)
	}

	e.nameEntry = widget.NewEntry()
	e.nameEntry.SetPlaceHolder(l.GetText(KeyPlaylistName))
	e.nameEntry.SetText(e.draft.Name)

	e.delayEntry = widget.NewEntry()
	e.delayEntry.SetPlaceHolder(strconv.Itoa(model.DefaultPlaylistDelayMs))
	e.delayEntry.SetText(strconv.Itoa(e.draft.DelayMs))

	e.countLabel = widget.NewLabel("")

	e.slideList = widget.NewList(
		func() int { return len(e.draft.Slides) },
		func() fyne.CanvasObject {
			return container.NewBorder(nil, nil, nil,
				container.NewHBox(widget.NewButton(IconEdit, nil), widget.NewButton(IconDelete, nil)),
				widget.NewLabel(""))
		},
		e.updateSlideItem,
	)

	e.addBtn = widget.NewButton(l.GetText(KeyAddSlide), func() {
		e.showSlideDialog(NewPlaylistIndex, model.NewSlide(""))
	})

	saveBtn := widget.NewButton(l.GetText(KeySave), e.onSave)
	saveBtn.Importance = widget.HighImportance
	cancelBtn := widget.NewButton(l.GetText(KeyCancel), e.finish)

	top := container.NewVBox(
		widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		e.nameEntry,
		widget.NewLabel(l.GetText(KeyDelayMs)),
		e.delayEntry,
		container.NewHBox(widget.NewLabel(l.GetText(KeySlides)), layout.NewSpacer(), e.countLabel),
	)
	bottom := container.NewVBox(
		e.addBtn,
		container.NewGridWithColumns(2, cancelBtn, saveBtn),
	)

	e.content = container.NewPadded(container.NewBorder(top, bottom, nil, nil, e.slideList))
	e.refreshSlides()
}

func (e *PlaylistEditor) updateSlideItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(e.draft.Slides) {
		return
	}
	row := item.(*fyne.Container)
	label := row.Objects[0].(*widget.Label)
	buttons := row.Objects[1].(*fyne.Container)
	editBtn := buttons.Objects[0].(*widget.Button)
	deleteBtn := buttons.Objects[1].(*widget.Button)

	slide := e.draft.Slides[id]
	label.SetText(fmt.Sprintf("%d. %s", id+1, slide.Text))

	editBtn.OnTapped = func() {
		e.showSlideDialog(id, e.draft.Slides[id])
	}
	deleteBtn.OnTapped = func() {
		if err := e.removeSlide(id); err != nil {
			showError(e.window, e.localization, e.logger, err, KeyMaxSlides)
		}
	}
}

// refreshSlides updates the slide list and the add button state
func (e *PlaylistEditor) refreshSlides() {
	e.countLabel.SetText(fmt.Sprintf("%d / %d", len(e.draft.Slides), model.MaxSlides))
	if e.draft.IsFull() {
		e.addBtn.Disable()
	} else {
		e.addBtn.Enable()
	}
	e.slideList.Refresh()
}

// applySlide appends slide, or replaces the slide at index
func (e *PlaylistEditor) applySlide(index int, slide model.Slide) error {
	var (
		next model.Playlist
		err  error
	)
	if index == NewPlaylistIndex {
		next, err = e.repo.AddSlide(e.draft, slide)
	} else {
		next, err = e.repo.ReplaceSlide(e.draft, index, slide)
	}
	if err != nil {
		return err
	}

	e.draft = next
	e.refreshSlides()
	return nil
}

func (e *PlaylistEditor) removeSlide(index int) error {
	next, err := e.repo.RemoveSlide(e.draft, index)
	if err != nil {
		return err
	}
	e.draft = next
	e.refreshSlides()
	return nil
}

// collect copies the form fields into the draft
func (e *PlaylistEditor) collect() (model.Playlist, error) {
	delay, err := parseNumber(e.delayEntry.Text)
	if err != nil {
		return model.Playlist{}, err
	}

	p := e.draft.Clone()
	p.Name = strings.TrimSpace(e.nameEntry.Text)
	p.DelayMs = delay
	return p, nil
}

// save persists the draft as a new or updated playlist
func (e *PlaylistEditor) save() error {
	p, err := e.collect()
	if err != nil {
		return err
	}

	if e.index == NewPlaylistIndex {
		return e.repo.Create(p)
	}
	return e.repo.Update(e.index, p)
}

func (e *PlaylistEditor) onSave() {
	if err := e.save(); err != nil {
		key := KeyMaxPlaylists
		if e.index != NewPlaylistIndex {
			key = KeyMaxSlides
		}
		showError(e.window, e.localization, e.logger, err, key)
		return
	}

	showToast(e.window, e.localization.GetText(KeyPlaylistSaved))
	e.finish()
}

func (e *PlaylistEditor) finish() {
	if e.onDone != nil {
		e.onDone()
	}
}

// showSlideDialog edits slide; index is NewPlaylistIndex for a new slide
func (e *PlaylistEditor) showSlideDialog(index int, slide model.Slide) {
	form := NewSlideForm(e.localization, slide)

	title := e.localization.GetText(KeyAddSlide)
	if index != NewPlaylistIndex {
		title = e.localization.GetText(KeyEditSlide)
	}

	d := dialog.NewCustomConfirm(
		title,
		e.localization.GetText(KeySave),
		e.localization.GetText(KeyCancel),
		container.NewVScroll(form.Content()),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			edited, err := form.Slide()
			if err == nil {
				err = e.applySlide(index, edited)
			}
			if err != nil {
				showError(e.window, e.localization, e.logger, err, KeyMaxSlides)
			}
		},
		e.window,
	)
	d.Resize(fyne.NewSize(EditorDialogWidth, EditorDialogHeight))
	d.Show()
}

// SlideForm holds the inputs of the add/edit slide dialog
type SlideForm struct {
	textEntry        *widget.Entry
	fontSizeEntry    *widget.Entry
	fontColorPicker  *SwatchPicker
	backgroundPicker *SwatchPicker
	fontSelect       *widget.Select
	content          fyne.CanvasObject
}

// NewSlideForm creates a form prefilled with slide
func NewSlideForm(localization *Localization, slide model.Slide) *SlideForm {
	l := localization
	f := &SlideForm{}

	f.textEntry = widget.NewEntry()
	f.textEntry.SetPlaceHolder(l.GetText(KeySlideText))
	f.textEntry.SetText(slide.Text)

	f.fontSizeEntry = widget.NewEntry()
	f.fontSizeEntry.SetPlaceHolder(strconv.Itoa(model.DefaultSlideFontSize))
	if slide.FontSize > 0 {
		f.fontSizeEntry.SetText(strconv.Itoa(slide.FontSize))
	}

	f.fontColorPicker = NewSwatchPicker(Palette(), nil)
	f.fontColorPicker.SetSelected(slide.FontColor)
	f.backgroundPicker = NewSwatchPicker(Palette(), nil)
	f.backgroundPicker.SetSelected(slide.BackgroundColor)

	f.fontSelect = widget.NewSelect(fontFamilyOptions(), nil)
	if slide.FontFamily != "" {
		f.fontSelect.SetSelected(string(slide.FontFamily))
	}

	f.content = container.NewVBox(
		f.textEntry,
		widget.NewLabel(l.GetText(KeyFontSize)),
		f.fontSizeEntry,
		widget.NewLabel(l.GetText(KeyFontColor)),
		f.fontColorPicker.Container,
		widget.NewLabel(l.GetText(KeyBackgroundColor)),
		f.backgroundPicker.Container,
		widget.NewLabel(l.GetText(KeyFontFamily)),
		f.fontSelect,
	)
	return f
}

// Content returns the form's root object
func (f *SlideForm) Content() fyne.CanvasObject {
	return f.content
}

// Slide reads the form. Unset style fields stay unset.
func (f *SlideForm) Slide() (model.Slide, error) {
	fontSize, err := parseNumber(f.fontSizeEntry.Text)
	if err != nil {
		return model.Slide{}, err
	}

	return model.Slide{
		Text: strings.TrimSpace(f.textEntry.Text),
		Style: model.Style{
			FontSize:        fontSize,
			FontColor:       f.fontColorPicker.Selected(),
			BackgroundColor: f.backgroundPicker.Selected(),
			FontFamily:      model.FontFamily(f.fontSelect.Selected),
		},
	}, nil
}
