package Xifra

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/op/go-logging.v1"
)

// DEBUG for turning debug logs on/off
const DEBUG = false

// Module is the go-logging module every Xifra logger writes under
const Module = "xifra"

const PREFIX = "->> "

// backend wraps the go-logging leveled backend so the level can be
// changed while loggers are writing to it.
type backend struct {
	sync.RWMutex
	leveled logging.LeveledBackend
}

func (b *backend) Log(level logging.Level, calldepth int, record *logging.Record) error {
	b.RLock()
	defer b.RUnlock()
	return b.leveled.Log(level, calldepth, record)
}

func (b *backend) GetLevel(module string) logging.Level {
	b.RLock()
	defer b.RUnlock()
	return b.leveled.GetLevel(module)
}

func (b *backend) SetLevel(level logging.Level, module string) {
	b.Lock()
	defer b.Unlock()
	b.leveled.SetLevel(level, module)
}

func (b *backend) IsEnabledFor(level logging.Level, module string) bool {
	b.RLock()
	defer b.RUnlock()
	return b.leveled.IsEnabledFor(level, module)
}

var logBackend = newBackend(os.Stderr)

func newBackend(w io.Writer) *backend {
	b := &backend{leveled: leveledTo(w)}
	b.leveled.SetLevel(logging.INFO, "")
	return b
}

func leveledTo(w io.Writer) logging.LeveledBackend {
	logFmt := logging.MustStringFormatter("%{time:15:04:05.000} %{level:.4s} %{module}: %{message}")
	base := logging.NewLogBackend(w, "", 0)
	return logging.AddModuleLevel(logging.NewBackendFormatter(base, logFmt))
}

// SetLogWriter redirects the shared log backend to w, keeping its level.
func SetLogWriter(w io.Writer) {
	logBackend.Lock()
	defer logBackend.Unlock()
	lvl := logBackend.leveled.GetLevel("")
	logBackend.leveled = leveledTo(w)
	logBackend.leveled.SetLevel(lvl, "")
}

// SetLogLevel sets the level of the shared log backend, using the
// go-logging level names (DEBUG, INFO, NOTICE, WARNING, ERROR, CRITICAL).
func SetLogLevel(level string) error {
	lvl, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		return fmt.Errorf("log: invalid level %q: %w", level, err)
	}
	logBackend.SetLevel(lvl, "")
	return nil
}

type logger struct {
	debug bool
	log   *logging.Logger
}

func NewLogger(debug bool) Logger {
	l := logging.MustGetLogger(Module)
	l.SetBackend(logBackend)
	return &logger{
		debug: debug,
		log:   l,
	}
}

type Logger interface {
	PrintMessage(message string)
	PrintMessages(messages ...interface{})
	PrintFormatted(format string, args ...interface{})
	PrintBits(name string, bits Bits)
	PrintHeader(header string)
	PrintError(err error)
}

func (l logger) PrintMessage(message string) {
	if l.debug {
		l.log.Debug(PREFIX + message)
	}
}

func (l logger) PrintMessages(messages ...interface{}) {
	if l.debug {
		l.log.Debug(PREFIX + fmt.Sprint(messages...))
	}
}

func (l logger) PrintFormatted(format string, args ...interface{}) {
	if l.debug {
		l.log.Debugf(PREFIX+format, args...)
	}
}

// PrintBits prints a summarized view of a bit sequence
func (l logger) PrintBits(name string, bits Bits) {
	const summaryLength = 32
	if !l.debug {
		return
	}
	if len(bits) == 0 {
		l.log.Debugf("%s[%s]: {}", PREFIX, name)
		return
	}
	s := bits.String()
	if len(s) > 2*summaryLength {
		s = s[:summaryLength] + " ... " + s[len(s)-summaryLength:]
	}
	l.log.Debugf("%s[%s] len=%d: {%s}", PREFIX, name, len(bits), s)
}

func (l logger) PrintHeader(header string) {
	l.log.Infof("=== ----\t %s \t---- ===", header)
}

// PrintError logs a non-nil error at ERROR level
func (l logger) PrintError(err error) {
	if err != nil {
		l.log.Errorf("|-> Error: %s", err)
	}
}
