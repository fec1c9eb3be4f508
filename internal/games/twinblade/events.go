package twinblade

import "github.com/vovakirdan/tui-twinblade/internal/core"

// AudioSink receives named cues as they happen. Implementations must not block.
type AudioSink interface {
	Play(cue core.Cue)
}

// AudioFunc adapts a function to AudioSink.
type AudioFunc func(cue core.Cue)

// Play calls f(cue).
func (f AudioFunc) Play(cue core.Cue) { f(cue) }

type silentSink struct{}

func (silentSink) Play(core.Cue) {}

// emit records an event for this tick and forwards its cue to the sink.
func (g *Game) emit(kind core.EventKind, cue core.Cue, subject string, value int, pos core.Vec2) {
	g.events = append(g.events, core.Event{
		Tick:    g.tick,
		Kind:    kind,
		Cue:     cue,
		Subject: subject,
		Value:   value,
		Pos:     pos,
	})
	if cue != core.CueNone {
		g.audio.Play(cue)
	}
}

// text emits a floating text event for the presentation layer.
func (g *Game) text(msg string, pos core.Vec2) {
	g.emit(core.EventText, core.CueNone, msg, 0, pos)
}
