package prompt

import (
	"fmt"
	"strings"

	"github.com/dhiyaancnirmal/mintaborate/pkg/llm"
	"github.com/dhiyaancnirmal/mintaborate/pkg/models"
	"github.com/dhiyaancnirmal/mintaborate/pkg/retrieval"
)

const systemInstruction = `You are a coding agent working strictly from retrieved documentation snippets.
You may only claim what the snippets support, and every claim in your answer must carry a citation
of the form {source, snippetHash, excerpt} copied from the snippets you were given.
If the documentation does not cover something, say so instead of guessing.`

// Plan builds the plan-phase conversation.
func Plan(task models.Task, memory models.AgentMemory, chunks []retrieval.Scored) []llm.Message {
	var b strings.Builder
	writeTask(&b, task)
	writeMemory(&b, memory)
	writeChunks(&b, chunks)
	b.WriteString("\nProduce a short ordered plan (planItems) for completing the task with this evidence. Revise rather than repeat any plan items already marked done.")
	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemInstruction},
		{Role: llm.RoleUser, Content: b.String()},
	}
}

// Act builds the act-phase conversation.
func Act(task models.Task, memory models.AgentMemory, plan PlanResult, chunks []retrieval.Scored) []llm.Message {
	var b strings.Builder
	writeTask(&b, task)
	writeMemory(&b, memory)
	b.WriteString("\nCurrent plan:\n")
	for i, item := range plan.PlanItems {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	writeChunks(&b, chunks)
	b.WriteString("\nExecute the next plan step. Return your best complete answer so far, the output of this step, citations for every claim, and done=true only when the answer fully covers the task.")
	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemInstruction},
		{Role: llm.RoleUser, Content: b.String()},
	}
}

// Reflect builds the reflect-phase conversation.
func Reflect(task models.Task, memory models.AgentMemory, act ActResult) []llm.Message {
	var b strings.Builder
	writeTask(&b, task)
	fmt.Fprintf(&b, "\nLatest answer:\n%s\n\nStep output:\n%s\n\nCitations: %d, done=%t\n",
		act.Answer, act.StepOutput, len(act.Citations), act.Done)
	b.WriteString("\nDecide whether another iteration would materially improve the answer. Summarize this iteration in one or two sentences and propose plan updates if the current plan missed something.")
	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemInstruction},
		{Role: llm.RoleUser, Content: b.String()},
	}
}

// Query assembles the retrieval query for one iteration from the task and
// the agent's memory.
func Query(task models.Task, memory models.AgentMemory) string {
	parts := []string{task.Name, task.Description}
	parts = append(parts, task.ExpectedSignals...)
	for _, item := range memory.Plan {
		if !item.Done {
			parts = append(parts, item.Text)
		}
	}
	if n := len(memory.StepSummaries); n > 0 {
		parts = append(parts, memory.StepSummaries[max(0, n-2):]...)
	}
	if n := len(memory.Facts); n > 0 {
		parts = append(parts, memory.Facts[max(0, n-5):]...)
	}
	return strings.Join(parts, " ")
}

func writeTask(b *strings.Builder, task models.Task) {
	fmt.Fprintf(b, "Task: %s\n%s\n", task.Name, task.Description)
	if len(task.ExpectedSignals) > 0 {
		fmt.Fprintf(b, "A good answer will cover: %s\n", strings.Join(task.ExpectedSignals, "; "))
	}
}

func writeMemory(b *strings.Builder, memory models.AgentMemory) {
	if memory.CurrentStep > 0 {
		fmt.Fprintf(b, "\nIteration %d. Budget left: %d steps, %d tokens, $%.4f.\n",
			memory.CurrentStep, memory.RemainingBudget.Steps, memory.RemainingBudget.Tokens, memory.RemainingBudget.CostUSD)
	}
	if len(memory.Facts) > 0 {
		b.WriteString("Known facts:\n")
		for _, f := range memory.Facts {
			fmt.Fprintf(b, "- %s\n", f)
		}
	}
	if len(memory.StepSummaries) > 0 {
		b.WriteString("Previous iterations:\n")
		for _, s := range memory.StepSummaries {
			fmt.Fprintf(b, "- %s\n", s)
		}
	}
}

func writeChunks(b *strings.Builder, chunks []retrieval.Scored) {
	b.WriteString("\nDocumentation snippets:\n")
	for _, c := range chunks {
		fmt.Fprintf(b, "[source=%s snippetHash=%s]\n%s\n\n", c.Chunk.SourceURL, c.Chunk.SnippetHash, c.Chunk.Text)
	}
}
