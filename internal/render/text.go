// Package render formats plans for terminal output.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/clinical-pathways-server/internal/domain"
	"github.com/clinical-pathways-server/internal/pathway"
)

// Steps beyond this are elided to keep terminal output readable.
const maxStepsRendered = 12

// PlanText renders a plan as indented text, walking unconditional
// PROCEED edges and stopping at the first decision point or terminal step.
// Decision points list their branch keys so the reader can see what result
// selects each branch.
func PlanText(plan *pathway.Plan) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Plan: %s\n", plan.ConditionName)

	id := plan.StartStepID
	seen := make(map[string]bool)
	for i := 0; i < maxStepsRendered; i++ {
		step, err := plan.Step(id)
		if err != nil {
			fmt.Fprintf(&sb, "  !! %v\n", err)
			break
		}
		seen[id] = true
		writeStep(&sb, i+1, step)

		if step.IsTerminal() {
			sb.WriteString("  (end of pathway)\n")
			break
		}

		next, err := step.Next(domain.KeyProceed)
		if err != nil {
			// Decision point: show the branches instead of walking on.
			keys := make([]string, 0, len(step.OutgoingEdges))
			for key := range step.OutgoingEdges {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			sb.WriteString("  Branches:\n")
			for _, key := range keys {
				fmt.Fprintf(&sb, "    %-22s -> %s\n", key, step.OutgoingEdges[key])
			}
			break
		}
		if seen[next] {
			fmt.Fprintf(&sb, "  (loops back to %s)\n", next)
			break
		}
		id = next
	}

	return sb.String()
}

// MetadataText renders a condition's descriptive metadata.
func MetadataText(name, definition string, aetiology []string, rf domain.RiskFactors, signs, complications []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n%s\n", name, definition)
	writeList(&sb, "Aetiology", aetiology)
	writeList(&sb, "Modifiable risk factors", rf.Modifiable)
	writeList(&sb, "Non-modifiable risk factors", rf.NonModifiable)
	writeList(&sb, "Signs and symptoms", signs)
	writeList(&sb, "Complications", complications)
	return sb.String()
}

func writeStep(sb *strings.Builder, n int, step pathway.Step) {
	fmt.Fprintf(sb, "Step %d (%s): %s\n", n, step.ID, step.Description)
	if step.Details != "" {
		fmt.Fprintf(sb, "  Details: %s\n", step.Details)
	}
	for _, a := range step.Actions {
		fmt.Fprintf(sb, "  Action: %s", a.Description)
		if a.Details != "" {
			fmt.Fprintf(sb, " (%s)", a.Details)
		}
		sb.WriteString("\n")
	}
	for _, inv := range step.Investigations {
		fmt.Fprintf(sb, "  Investigation: %s", inv.Type)
		if inv.Urgency != "" {
			fmt.Fprintf(sb, " [%s]", inv.Urgency)
		}
		if inv.Rationale != "" {
			fmt.Fprintf(sb, " - %s", inv.Rationale)
		}
		sb.WriteString("\n")
	}
	for _, d := range step.Drugs {
		fmt.Fprintf(sb, "  Drug: %s", d.Name)
		if d.Dose != "" {
			fmt.Fprintf(sb, " %s", d.Dose)
		}
		if d.Route != "" {
			fmt.Fprintf(sb, " %s", d.Route)
		}
		if d.Rationale != "" {
			fmt.Fprintf(sb, " - %s", d.Rationale)
		}
		sb.WriteString("\n")
		for _, w := range d.Warnings {
			fmt.Fprintf(sb, "    WARNING: %s\n", w)
		}
	}
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(sb, "  - %s\n", item)
	}
}
