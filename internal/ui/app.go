package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"greetcard/internal/card"
	"greetcard/internal/config"
	"greetcard/internal/content"
	"greetcard/internal/imagery"
)

// confettiRows is the height of the particle band above the card.
const confettiRows = 3

// ImageRenderer renders an image URL into terminal cells, falling back to
// placeholder when the URL cannot be loaded.
type ImageRenderer interface {
	Render(ctx context.Context, url, placeholder string, width, height int) imagery.Frame
}

// Options wires the AppModel's collaborators. Card and Config are required.
type Options struct {
	Card   *content.Card
	Config *config.Config
	Images ImageRenderer
	Logger *zap.Logger
	// OnTransition observes phase changes (tracing).
	OnTransition func(from, to card.Phase)
	// OnEffect observes decorative effects (tracing).
	OnEffect func(card.Effect)
	// MarkdownStyle is the glamour style for message text. Default "notty".
	MarkdownStyle string
}

// AppModel is the root model. It owns the card sequencer and switches the
// visible view by phase.
type AppModel struct {
	Seq        *card.Sequencer
	Card       *content.Card
	Config     *config.Config
	KeyHandler *KeyHandler
	Confetti   *Confetti
	Images     ImageRenderer
	Logger     *zap.Logger

	Width  int
	Height int

	cover    *CoverView
	reveal   *RevealView
	messages *MessagesModal
	gallery  *GalleryView
	done     *DoneView

	frames        map[frameKey]string
	pending       map[frameKey]bool
	markdownStyle string
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model on the cover page.
func NewAppModel(opts Options) *AppModel {
	a := &AppModel{
		Card:          opts.Card,
		Config:        opts.Config,
		Confetti:      NewConfetti(),
		Images:        opts.Images,
		Logger:        opts.Logger,
		frames:        make(map[frameKey]string),
		pending:       make(map[frameKey]bool),
		markdownStyle: opts.MarkdownStyle,
	}
	if a.Logger == nil {
		a.Logger = zap.NewNop()
	}
	if a.markdownStyle == "" {
		a.markdownStyle = "notty"
	}

	animator := card.AnimatorFunc(func(e card.Effect) {
		a.Confetti.Fire(e)
		a.Logger.Debug("effect fired", zap.Stringer("effect", e))
		if opts.OnEffect != nil {
			opts.OnEffect(e)
		}
	})
	a.Seq = card.New(a.Card.Header, len(a.Card.Photos),
		card.WithAnimator(animator),
		card.WithTransitionHook(func(from, to card.Phase) {
			a.Logger.Info("phase changed",
				zap.Stringer("from", from),
				zap.Stringer("to", to))
			if opts.OnTransition != nil {
				opts.OnTransition(from, to)
			}
		}),
	)

	a.cover = &CoverView{app: a}
	a.reveal = &RevealView{app: a}
	a.messages = NewMessagesModal(a)
	a.gallery = &GalleryView{app: a}
	a.done = &DoneView{app: a}
	a.KeyHandler = NewKeyHandler(DefaultKeybinds())
	return a
}

// DefaultKeybinds binds the card actions per phase.
func DefaultKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	send := func(msg tea.Msg) tea.Cmd { return func() tea.Msg { return msg } }

	reg.BindWithDescForPhase("enter", send(ProceedMsg{}), "open card", card.PhaseCover)
	reg.BindWithDescForPhase("enter", send(RevealActionMsg{}), "continue", card.PhaseReveal)
	reg.BindWithDescForPhase("enter", send(CloseMessagesMsg{}), "photos", card.PhaseMessages)
	reg.BindWithDescForPhase("esc", send(CloseMessagesMsg{}), "photos", card.PhaseMessages)
	reg.BindWithDescForPhase("x", send(CloseMessagesMsg{}), "photos", card.PhaseMessages)
	reg.BindWithDescForPhase("left", send(PrevPhotoMsg{}), "prev", card.PhaseGallery)
	reg.BindWithDescForPhase("h", send(PrevPhotoMsg{}), "prev", card.PhaseGallery)
	reg.BindWithDescForPhase("right", send(NextPhotoMsg{}), "next", card.PhaseGallery)
	reg.BindWithDescForPhase("l", send(NextPhotoMsg{}), "next", card.PhaseGallery)
	reg.BindWithDescForPhase("esc", send(CloseGalleryMsg{}), "close", card.PhaseGallery)
	reg.BindWithDescForPhase("x", send(CloseGalleryMsg{}), "close", card.PhaseGallery)
	reg.BindWithDesc("q", send(QuitMsg{}), "quit")
	reg.Bind("ctrl+c", send(QuitMsg{}))
	return reg
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.imageCmds()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	return a, tea.Batch(cmd, a.imageCmds())
}

func (a *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Width, a.Height = msg.Width, msg.Height
		return nil
	case tea.KeyMsg:
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Seq.Phase()); consumed {
				return keyCmd
			}
		}
	case QuitMsg:
		a.Teardown()
		return tea.Quit
	case ProceedMsg:
		if tick, ok := a.Seq.Proceed(); ok {
			return typingTickCmd(a.Config.Typing.Interval, tick)
		}
		return nil
	case typingTickMsg:
		if next, ok := a.Seq.Advance(msg.tick); ok {
			return typingTickCmd(a.Config.Typing.Interval, next)
		}
		return nil
	case RevealActionMsg:
		if a.Seq.State().Reveal == card.CakeShown {
			return a.update(CutCakeMsg{})
		}
		return a.update(OpenGiftMsg{})
	case OpenGiftMsg:
		if !a.Seq.OpenGift() {
			return nil
		}
		return tea.Batch(a.Confetti.Start(), cakeRevealCmd(a.Config.Typing.GiftDelay))
	case cakeRevealMsg:
		a.Seq.ShowCake()
		return nil
	case CutCakeMsg:
		if !a.Seq.CutCake() {
			return nil
		}
		a.messages.Invalidate()
		return a.Confetti.Start()
	case CloseMessagesMsg:
		a.Seq.CloseMessages()
		return nil
	case CloseGalleryMsg:
		a.Seq.CloseGallery()
		return nil
	case NextPhotoMsg:
		a.Seq.NextPhoto()
		return nil
	case PrevPhotoMsg:
		a.Seq.PrevPhoto()
		return nil
	case confettiFrameMsg:
		return a.Confetti.Update(msg)
	case imageLoadedMsg:
		delete(a.pending, msg.key)
		a.frames[msg.key] = msg.frame.Text
		if msg.frame.Fallback {
			a.Logger.Debug("showing placeholder", zap.String("url", msg.key.URL))
		}
		a.messages.Invalidate()
		return nil
	case ContentReloadedMsg:
		a.reload(msg)
		return nil
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return cmd
}

// reload swaps in a new card. The header follows the new card until
// typing starts; after that the typed text is kept.
func (a *AppModel) reload(msg ContentReloadedMsg) {
	if msg.Err != nil {
		a.Logger.Warn("content reload failed, keeping current card", zap.Error(msg.Err))
		return
	}
	if msg.Card == nil {
		return
	}
	a.Card = msg.Card
	a.Seq.SetHeader(msg.Card.Header)
	a.Seq.SetPhotoCount(len(msg.Card.Photos))
	a.messages.Invalidate()
	a.Logger.Info("content reloaded",
		zap.Int("messages", len(msg.Card.Messages)),
		zap.Int("photos", len(msg.Card.Photos)))
}

// Teardown stops the typing run. Safe to call more than once.
func (a *AppModel) Teardown() {
	a.Seq.Teardown()
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	body := a.currentView().View()
	if band := a.Confetti.View(a.bandWidth(), confettiRows); band != "" {
		body = lipgloss.JoinVertical(lipgloss.Center, band, body)
	}
	body = lipgloss.JoinVertical(lipgloss.Center, body, "", RenderKeybindHelp(a.KeyHandler.Registry, a.Seq.Phase()))
	if a.Width == 0 || a.Height == 0 {
		return body
	}
	return lipgloss.Place(a.Width, a.Height, lipgloss.Center, lipgloss.Center, body)
}

func (a *AppModel) bandWidth() int {
	if a.Width == 0 {
		return 60
	}
	return a.Width
}

func (a *AppModel) currentView() View {
	switch a.Seq.Phase() {
	case card.PhaseReveal:
		return a.reveal
	case card.PhaseMessages:
		return a.messages
	case card.PhaseGallery:
		return a.gallery
	case card.PhaseDone:
		return a.done
	default:
		return a.cover
	}
}

func (a *AppModel) setCurrentView(v View) {
	if m, ok := v.(*MessagesModal); ok {
		a.messages = m
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}
