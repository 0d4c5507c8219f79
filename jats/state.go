package jats

import (
	"fmt"
	"runtime/debug"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"lensconv/document"
)

// Sink is document graph conversion writes into.
type Sink interface {
	SetID(id string)
	Root() *document.Root
	Create(node document.Node) error
	Show(view, id string) error
	NodeBySourceID(sourceID string) document.Node
	RebuildAll() error
}

// frame is the target newly discovered annotations attach to. Node is empty
// until paragraph is known to be non-empty and gets its id.
type frame struct {
	node  string
	field string
}

// pendingAnnotation is annotation discovered while walking, it is created in
// the sink when the whole article has been walked.
type pendingAnnotation struct {
	kind     document.AnnotationType
	path     document.Path
	rng      document.Range
	target   string
	resolved bool
	url      string
	el       *etree.Element
}

// state is everything single conversion run owns.
type state struct {
	sink     Sink
	ids      *IDGenerator
	stack    []frame
	pending  []pendingAnnotation
	level    int
	strategy Strategy
	article  *etree.Element
	docID    string
	created  int
	gaps     []Gap
	log      *zap.Logger
}

func newState(sink Sink, log *zap.Logger) *state {
	return &state{
		sink:     sink,
		ids:      NewIDGenerator(),
		strategy: NopStrategy{},
		log:      log,
	}
}

func (s *state) push(f frame) {
	s.stack = append(s.stack, f)
}

func (s *state) pop() {
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *state) top() frame {
	if len(s.stack) == 0 {
		// this should never happen
		panic("annotated text scanned without target frame")
	}
	return s.stack[len(s.stack)-1]
}

// assign gives id to pending annotations queued since mark for the frame
// which did not have one yet.
func (s *state) assign(mark int, id string) {
	for i := mark; i < len(s.pending); i++ {
		if s.pending[i].path.Node == "" {
			s.pending[i].path.Node = id
		}
	}
}

func (s *state) create(n document.Node) error {
	if err := s.sink.Create(n); err != nil {
		return fmt.Errorf("unable to create node: %w", err)
	}
	s.created++
	return nil
}

func (s *state) show(view string, nodes ...document.Node) error {
	for _, n := range nodes {
		if err := s.sink.Show(view, n.NodeID()); err != nil {
			return fmt.Errorf("unable to show node: %w", err)
		}
	}
	return nil
}

// gap records coverage gap and continues.
func (s *state) gap(el *etree.Element, msg string) {
	g := Gap{Message: msg, Path: elementPath(el)}
	if el != nil {
		g.Element = el.FullTag()
	}
	s.gaps = append(s.gaps, g)
	s.log.Warn(msg, zap.String("tag", g.Element), zap.String("path", g.Path))
}

func (s *state) structure(el *etree.Element, msg string) error {
	return &StructureError{Element: el.FullTag(), Path: el.GetPath(), Msg: msg}
}

func (s *state) hookArticle() *Article {
	return &Article{ID: s.docID, Element: s.article, Log: s.log}
}

// enhance runs strategy hook, false means hook failed and its changes must
// be dropped.
func (s *state) enhance(hook string, el *etree.Element, fn func() error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Debug("Enhancement panic", zap.String("hook", hook), zap.ByteString("stack", debug.Stack()))
			s.gap(el, fmt.Sprintf("%s enhancement failed: %v", hook, r))
			ok = false
		}
	}()
	if err := fn(); err != nil {
		s.gap(el, fmt.Sprintf("%s enhancement failed: %v", hook, err))
		return false
	}
	return true
}
