package actions

import (
	"github.com/openmagnate/magnate/internal/corp/core"
	"github.com/openmagnate/magnate/internal/corp/events"
)

// Research spends accumulated research points to unlock a node in the
// division's research tree. Unlocking an already-unlocked node succeeds
// as a free no-op; insufficient points report (false, nil) so the caller
// can retry later. The tree's node flag and the division's unlocked set
// are two views of one fact and move together.
func (e *Engine) Research(corp *core.Corporation, div *core.Division, researchName string) (bool, error) {
	const op = "research"

	if div.Tree == nil {
		return false, core.WrapActionError(op, div.Type, core.ErrNoResearchTree)
	}
	node, ok := div.Tree.Node(researchName)
	if !ok {
		return false, core.WrapActionError(op, researchName, core.ErrUnknownResearch)
	}
	if div.HasResearch(researchName) {
		return true, nil
	}
	if div.ResearchPoints < node.Cost {
		return false, nil
	}

	div.ResearchPoints -= node.Cost
	div.Tree.Unlock(researchName)
	div.Researched[researchName] = true

	e.logger.Debug().
		Str("division", div.Name).
		Str("research", researchName).
		Float64("cost", node.Cost).
		Msg("Research unlocked")
	e.publish(events.NewResearchUnlockedEvent(corp.ID.String(), div.Name, researchName, node.Cost))
	return true, nil
}
