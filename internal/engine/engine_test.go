package engine

import (
	"context"
	"testing"
	"time"

	"github.com/emberlight/cigbat/internal/animation"
	"github.com/emberlight/cigbat/internal/battery"
	"github.com/emberlight/cigbat/internal/models"
	"github.com/emberlight/cigbat/internal/presentation"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

type fakeRenderer struct {
	sprites   []presentation.Tier
	labels    []string
	opacity   float64
	glow      float64
	layering  []models.DisplayMode
	visible   []bool
	reloads   int
	reloadErr error
}

func (r *fakeRenderer) SetSprite(tier presentation.Tier) { r.sprites = append(r.sprites, tier) }
func (r *fakeRenderer) SetLabel(text string, opacity float64) {
	if len(r.labels) == 0 || r.labels[len(r.labels)-1] != text {
		r.labels = append(r.labels, text)
	}
	r.opacity = opacity
}
func (r *fakeRenderer) SetGlowOpacity(v float64) { r.glow = v }
func (r *fakeRenderer) SetWindowLayering(m models.DisplayMode) {
	r.layering = append(r.layering, m)
}
func (r *fakeRenderer) SetVisible(v bool)    { r.visible = append(r.visible, v) }
func (r *fakeRenderer) ReloadSprites() error { r.reloads++; return r.reloadErr }

type fakeStatus struct {
	directives []presentation.Directive
	testMode   []bool
	visible    []bool
}

func (s *fakeStatus) DirectiveChanged(d presentation.Directive) { s.directives = append(s.directives, d) }
func (s *fakeStatus) TestModeChanged(on bool)                   { s.testMode = append(s.testMode, on) }
func (s *fakeStatus) VisibilityChanged(v bool)                  { s.visible = append(s.visible, v) }

// scriptSampler returns its current sample and counts reads.
type scriptSampler struct {
	sample battery.Sample
	reads  int
}

func (s *scriptSampler) Next(context.Context) battery.Sample {
	s.reads++
	return s.sample
}

func newTestEngine(sample battery.Sample) (*Engine, *fakeRenderer, *fakeStatus, *scriptSampler) {
	r := &fakeRenderer{}
	st := &fakeStatus{}
	live := &scriptSampler{sample: sample}
	e := New(Options{
		Mode:      models.ModeWallpaper,
		Live:      live,
		Renderer:  r,
		Status:    st,
		Animation: animation.DefaultConfig(),
	})
	return e, r, st, live
}

func TestNewAppliesLayeringOnce(t *testing.T) {
	e, r, _, _ := newTestEngine(battery.Sample{Percent: 50})
	if len(r.layering) != 1 || r.layering[0] != models.ModeWallpaper {
		t.Errorf("layering = %v, want [wallpaper]", r.layering)
	}
	if e.State() != StateIdle {
		t.Errorf("State() = %v, want idle", e.State())
	}
}

func TestTickChargingScenario(t *testing.T) {
	ctx := context.Background()
	e, r, st, _ := newTestEngine(battery.Sample{Percent: 82, Charging: true, Source: battery.SourceLive})

	e.Tick(ctx, t0)

	want := presentation.Directive{Tier: presentation.TierHigh, Label: "82% ⚡", Charging: true}
	if got := e.Directive(); got != want {
		t.Fatalf("Directive() = %+v, want %+v", got, want)
	}
	if e.State() != StateRendering {
		t.Errorf("State() = %v, want rendering", e.State())
	}
	if len(r.sprites) != 1 || r.sprites[0] != presentation.TierHigh {
		t.Errorf("sprites = %v, want [high]", r.sprites)
	}

	text := e.Animations().TextTimeline()
	glow := e.Animations().GlowTimeline()
	if text == nil || !text.Running() {
		t.Fatal("text channel not retargeted")
	}
	if glow == nil || !glow.Running() {
		t.Fatal("glow pulse not started")
	}

	e.Frame(t0.Add(time.Second))
	if r.labels[len(r.labels)-1] != "82% ⚡" {
		t.Errorf("renderer label = %q, want 82%% ⚡", r.labels[len(r.labels)-1])
	}

	// An identical sample starts nothing new.
	e.Tick(ctx, t0.Add(5*time.Second))
	if e.Animations().TextTimeline() != nil {
		t.Error("identical tick restarted the text channel")
	}
	if e.Animations().GlowTimeline() != glow {
		t.Error("identical tick replaced the glow pulse")
	}
	if len(r.sprites) != 1 {
		t.Errorf("identical tick set the sprite again: %v", r.sprites)
	}
	if len(st.directives) != 1 {
		t.Errorf("status notified %d times, want 1", len(st.directives))
	}
}

func TestTickLabelChangeWithinTier(t *testing.T) {
	ctx := context.Background()
	e, r, _, live := newTestEngine(battery.Sample{Percent: 60})
	e.Tick(ctx, t0)
	e.Frame(t0.Add(time.Second))

	live.sample = battery.Sample{Percent: 61}
	e.Tick(ctx, t0.Add(5*time.Second))

	if e.Animations().TextTimeline() == nil {
		t.Error("label change did not retarget text")
	}
	if len(r.sprites) != 1 {
		t.Errorf("sprite set %d times for a same-tier change, want 1", len(r.sprites))
	}
}

func TestTickChargingStopsGlow(t *testing.T) {
	ctx := context.Background()
	e, r, _, live := newTestEngine(battery.Sample{Percent: 95, Charging: true})
	e.Tick(ctx, t0)
	e.Frame(t0.Add(1300 * time.Millisecond))

	live.sample = battery.Sample{Percent: 95}
	e.Tick(ctx, t0.Add(5*time.Second))
	e.Frame(t0.Add(5 * time.Second))

	if e.Animations().GlowTimeline() != nil {
		t.Error("glow still running after unplug")
	}
	if r.glow != 1 {
		t.Errorf("glow opacity = %v, want 1", r.glow)
	}
}

func TestCycleOnlyInTestMode(t *testing.T) {
	ctx := context.Background()
	e, _, st, live := newTestEngine(battery.Sample{Percent: 40})
	e.Tick(ctx, t0)

	e.Cycle(ctx, t0.Add(time.Second))
	if live.reads != 1 {
		t.Errorf("Cycle outside test mode read the sampler")
	}

	e.ToggleTestMode(ctx, t0.Add(2*time.Second))
	if !e.TestMode() || len(st.testMode) != 1 || !st.testMode[0] {
		t.Fatalf("test mode not reported: %v", st.testMode)
	}
	if got := e.Directive().Label; got != "0% " {
		t.Errorf("label after enabling test mode = %q, want 0%%", got)
	}

	wants := []string{"25% ", "50% ", "75% ", "100% ⚡", "0% "}
	for i, want := range wants {
		e.Cycle(ctx, t0.Add(time.Duration(3+i)*time.Second))
		if got := e.Directive().Label; got != want {
			t.Errorf("cycle %d label = %q, want %q", i+1, got, want)
		}
	}

	e.ToggleTestMode(ctx, t0.Add(10*time.Second))
	if got := e.Directive().Label; got != "40% " {
		t.Errorf("label after leaving test mode = %q, want live 40%%", got)
	}
}

func TestToggleVisibility(t *testing.T) {
	e, r, st, _ := newTestEngine(battery.Sample{Percent: 40})
	e.ToggleVisibility()
	e.ToggleVisibility()

	if len(r.visible) != 2 || r.visible[0] || !r.visible[1] {
		t.Errorf("renderer visibility = %v, want [false true]", r.visible)
	}
	if len(st.visible) != 2 {
		t.Errorf("status visibility = %v", st.visible)
	}
}

func TestReloadAssetsReappliesSprite(t *testing.T) {
	ctx := context.Background()
	e, r, _, _ := newTestEngine(battery.Sample{Percent: 10})

	e.ReloadAssets()
	if r.reloads != 1 || len(r.sprites) != 0 {
		t.Errorf("reload before first render: reloads=%d sprites=%v", r.reloads, r.sprites)
	}

	e.Tick(ctx, t0)
	e.ReloadAssets()
	if len(r.sprites) != 2 || r.sprites[1] != presentation.TierEmpty {
		t.Errorf("sprites = %v, want tier re-applied after reload", r.sprites)
	}
}

func TestShutdownCancelsAnimations(t *testing.T) {
	ctx := context.Background()
	e, r, _, live := newTestEngine(battery.Sample{Percent: 50})
	e.Tick(ctx, t0)
	e.Frame(t0.Add(time.Second))

	live.sample = battery.Sample{Percent: 85, Charging: true}
	e.Tick(ctx, t0.Add(5*time.Second))
	e.Frame(t0.Add(5*time.Second + 100*time.Millisecond))

	text := e.Animations().TextTimeline()
	glow := e.Animations().GlowTimeline()
	e.Shutdown()

	if text.Running() || glow.Running() {
		t.Error("timelines running after Shutdown")
	}
	if r.opacity != 1 || r.glow != 1 {
		t.Errorf("renderer left at label %v glow %v, want 1 and 1", r.opacity, r.glow)
	}
	if got := r.labels[len(r.labels)-1]; got != "85% ⚡" {
		t.Errorf("renderer label = %q, want the target label", got)
	}

	reads := live.reads
	e.Tick(ctx, t0.Add(10*time.Second))
	if live.reads != reads {
		t.Error("Tick after Shutdown read the sampler")
	}
}
