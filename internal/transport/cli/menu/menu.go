package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/RedhaAGGOUN/bateau-de-thesee/internal/model"
	"github.com/RedhaAGGOUN/bateau-de-thesee/platform/logger"
)

const (
	banner = "=== Bienvenue dans la simulation du bateau de Thésée ==="

	menuText = "\n--- Menu ---\n" +
		"1. Afficher l'état du bateau\n" +
		"2. Remplacer une pièce\n" +
		"3. Modifier le matériau d'une pièce\n" +
		"4. Afficher l'historique des modifications\n" +
		"5. Afficher la vitesse maximale du RacingShip\n" +
		"6. Quitter\n"

	choicePrompt          = "Votre choix : "
	replaceNamePrompt     = "Entrez le nom de la pièce à remplacer : "
	replaceMaterialPrompt = "Entrez le matériau de la nouvelle pièce : "
	changeNamePrompt      = "Entrez le nom de la pièce à modifier : "
	changeMaterialPrompt  = "Entrez le nouveau matériau : "

	msgReplaced     = "La pièce '%s' a été remplacée.\n"
	msgChanged      = "Le matériau de la pièce '%s' a été modifié.\n"
	msgPartNotFound = "Erreur : la pièce '%s' n'existe pas sur le navire.\n"
	msgInvalid      = "Option non valide. Veuillez réessayer.\n"
	msgGoodbye      = "Au revoir !\n"
)

const (
	choiceDisplayState   = "1"
	choiceReplacePart    = "2"
	choiceChangePart     = "3"
	choiceDisplayHistory = "4"
	choiceDisplaySpeed   = "5"
	choiceQuit           = "6"
)

type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type Ship interface {
	DisplayState(w io.Writer) error
	ReplacePart(ctx context.Context, partName string, newPart *model.Part) error
	ChangePart(ctx context.Context, partName, newMaterial string) error
	DisplayHistory(w io.Writer) error
}

type SpeedDisplayer interface {
	DisplaySpeed(w io.Writer) error
}

// Controller drives one interactive session. Dispatch holds the menu logic;
// Run only adds the read loop around it.
type Controller struct {
	ship   Ship
	racing SpeedDisplayer

	in  *bufio.Reader
	out io.Writer

	readerOnce sync.Once
	lines      chan lineResult
	stop       chan struct{}
	stopOnce   sync.Once

	state State
}

type lineResult struct {
	line string
	err  error
}

func NewController(ship Ship, racing SpeedDisplayer, in io.Reader, out io.Writer) *Controller {
	return &Controller{
		ship:   ship,
		racing: racing,
		in:     bufio.NewReader(in),
		out:    out,
		stop:   make(chan struct{}),
		state:  StateRunning,
	}
}

func (c *Controller) State() State { return c.state }

// Run prints the banner and serves the menu until the user quits, the
// input ends or ctx is cancelled. End of input counts as a quit.
func (c *Controller) Run(ctx context.Context) error {
	const op = "menu.Run"

	ctx = logger.ContextWithFields(ctx, logger.String("session_id", uuid.NewString()))
	logger.Info(ctx, "session started")

	defer c.stopOnce.Do(func() { close(c.stop) })

	if _, err := fmt.Fprintln(c.out, banner); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for c.state == StateRunning {
		if err := ctx.Err(); err != nil {
			logger.Info(ctx, "session interrupted", logger.ErrorF(err))
			return nil
		}

		if _, err := io.WriteString(c.out, menuText+choicePrompt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		choice, err := c.readLine(ctx)
		if isInterrupt(err) {
			return c.interrupted(ctx, err)
		}
		if errors.Is(err, io.EOF) {
			logger.Info(ctx, "input closed, ending session")
			c.state = StateTerminated
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: read choice: %w", op, err)
		}

		if _, err := c.Dispatch(ctx, choice); err != nil {
			if isInterrupt(err) {
				return c.interrupted(ctx, err)
			}
			if errors.Is(err, io.EOF) {
				logger.Info(ctx, "input closed during prompt, ending session")
				c.state = StateTerminated
				return nil
			}
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	logger.Info(ctx, "session ended")
	return nil
}

// interrupted ends the session after ctx was cancelled while waiting for
// input. The pending prompt line is closed so the shell starts clean.
func (c *Controller) interrupted(ctx context.Context, cause error) error {
	logger.Info(ctx, "session interrupted", logger.ErrorF(cause))
	if _, err := io.WriteString(c.out, "\n"); err != nil {
		return fmt.Errorf("menu.Run: %w", err)
	}
	return nil
}

func isInterrupt(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Dispatch executes one menu choice. Part-not-found and unknown choices are
// reported to the user and leave the controller running; only I/O failures
// are returned.
func (c *Controller) Dispatch(ctx context.Context, choice string) (State, error) {
	var err error

	switch choice {
	case choiceDisplayState:
		err = c.ship.DisplayState(c.out)
	case choiceReplacePart:
		err = c.replacePart(ctx)
	case choiceChangePart:
		err = c.changePart(ctx)
	case choiceDisplayHistory:
		err = c.ship.DisplayHistory(c.out)
	case choiceDisplaySpeed:
		err = c.racing.DisplaySpeed(c.out)
	case choiceQuit:
		_, err = io.WriteString(c.out, msgGoodbye)
		c.state = StateTerminated
	default:
		logger.Debug(ctx, "unknown menu choice", logger.String("choice", choice))
		err = c.report(fmt.Errorf("choice %q: %w", choice, model.ErrUnknownChoice), "")
	}

	return c.state, err
}

func (c *Controller) replacePart(ctx context.Context) error {
	name, err := c.prompt(ctx, replaceNamePrompt)
	if err != nil {
		return err
	}
	material, err := c.prompt(ctx, replaceMaterialPrompt)
	if err != nil {
		return err
	}

	if err := c.ship.ReplacePart(ctx, name, model.NewPart(name, material)); err != nil {
		return c.report(err, name)
	}

	_, err = fmt.Fprintf(c.out, msgReplaced, name)
	return err
}

func (c *Controller) changePart(ctx context.Context) error {
	name, err := c.prompt(ctx, changeNamePrompt)
	if err != nil {
		return err
	}
	material, err := c.prompt(ctx, changeMaterialPrompt)
	if err != nil {
		return err
	}

	if err := c.ship.ChangePart(ctx, name, material); err != nil {
		return c.report(err, name)
	}

	_, err = fmt.Fprintf(c.out, msgChanged, name)
	return err
}

// report renders recoverable errors for the user and passes anything else
// through.
func (c *Controller) report(err error, partName string) error {
	var werr error

	switch {
	case errors.Is(err, model.ErrPartNotFound):
		_, werr = fmt.Fprintf(c.out, msgPartNotFound, partName)
	case errors.Is(err, model.ErrUnknownChoice):
		_, werr = io.WriteString(c.out, msgInvalid)
	default:
		return err
	}

	return werr
}

func (c *Controller) prompt(ctx context.Context, text string) (string, error) {
	if _, err := io.WriteString(c.out, text); err != nil {
		return "", err
	}
	return c.readLine(ctx)
}

// readLine returns the next input line, or ctx's error as soon as ctx is
// done even while the underlying read is still blocked.
func (c *Controller) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.readerOnce.Do(func() {
		c.lines = make(chan lineResult, 1)
		go c.pumpLines()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return r.line, r.err
	}
}

// pumpLines is the only reader of c.in. It stops at the first read error
// or once Run has returned.
func (c *Controller) pumpLines() {
	defer close(c.lines)

	for {
		line, err := c.readRawLine()
		select {
		case c.lines <- lineResult{line: line, err: err}:
		case <-c.stop:
			return
		}
		if err != nil {
			return
		}
	}
}

// readRawLine returns the next line without its terminator. A final line
// with no trailing newline is still returned; io.EOF is only reported when
// nothing was read.
func (c *Controller) readRawLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}
