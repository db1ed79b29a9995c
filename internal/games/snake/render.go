package snake

import (
	"fmt"

	"github.com/vovakirdan/cnake/internal/core"
)

// Step is one stage of frame composition.
type Step int

const (
	StepBoard Step = iota
	StepSnake
	StepApple
	StepHUD
	StepTitle
	StepPausedBanner
	StepGameOverBanner
)

func (s Step) String() string {
	switch s {
	case StepBoard:
		return "board"
	case StepSnake:
		return "snake"
	case StepApple:
		return "apple"
	case StepHUD:
		return "hud"
	case StepTitle:
		return "title"
	case StepPausedBanner:
		return "paused_banner"
	case StepGameOverBanner:
		return "game_over_banner"
	default:
		return "unknown"
	}
}

var playingSteps = []Step{StepBoard, StepSnake, StepApple, StepHUD}

// RenderSteps returns the ordered draw steps for a phase. Overlays come last.
func RenderSteps(phase core.Phase) []Step {
	switch phase {
	case core.PhaseMenu:
		return []Step{StepBoard, StepSnake, StepApple, StepTitle}
	case core.PhasePaused:
		return append(append([]Step(nil), playingSteps...), StepPausedBanner)
	case core.PhaseGameOver:
		return append(append([]Step(nil), playingSteps...), StepGameOverBanner)
	default:
		return append([]Step(nil), playingSteps...)
	}
}

// Render returns the draw primitives for the current frame.
func (g *Game) Render() []core.Primitive {
	var prims []core.Primitive
	var scene []core.Primitive // body, head and apple, computed once

	for _, step := range RenderSteps(g.phase) {
		switch step {
		case StepBoard:
			cols, rows, unit := g.Dimensions()
			prims = append(prims, core.RectPrimitive(core.NewRect(0, 0, cols*unit, rows*unit), core.RoleBoard))
		case StepSnake:
			scene = ComputeDrawPrimitives(g.scene, g.geometry)
			for _, p := range scene {
				if p.Role != core.RoleApple {
					prims = append(prims, p)
				}
			}
		case StepApple:
			for _, p := range scene {
				if p.Role == core.RoleApple {
					prims = append(prims, p)
				}
			}
		case StepHUD:
			prims = append(prims, core.TextPrimitive(core.AnchorTop, core.RoleHUD,
				fmt.Sprintf("%s | Score: %d | Length: %d", g.title, g.score, g.scene.Snake.Len())))
		case StepTitle:
			prims = append(prims, core.TextPrimitive(core.AnchorCenter, core.RoleBanner,
				"C N A K E", "Press Enter to start"))
		case StepPausedBanner:
			prims = append(prims, core.TextPrimitive(core.AnchorCenter, core.RoleBanner,
				"Paused", "Press P to continue"))
		case StepGameOverBanner:
			heading := "Game Over"
			if g.cleared {
				heading = "Board cleared!"
			}
			prims = append(prims, core.TextPrimitive(core.AnchorCenter, core.RoleBanner,
				heading, fmt.Sprintf("Score: %d  Enter to restart", g.score)))
		}
	}
	return prims
}
