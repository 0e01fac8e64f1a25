package content

import (
	"fmt"
	"strings"

	"github.com/abhisek/learnpath/internal/jobs"
)

const systemPrompt = `You are a curriculum designer and career advisor for self-taught learners.
Always answer with a single JSON document matching the requested schema and nothing else.`

func planPrompt(skill, duration string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a detailed learning roadmap for a beginner to learn %s over a period of %s. ", skill, duration)
	b.WriteString("The roadmap should be divided by weeks. ")
	b.WriteString("For each week, provide a title, a list of key topics with suggested online resources ")
	b.WriteString("(like articles, tutorials, or documentation), and a small project to apply the learned concepts. ")
	b.WriteString("Ensure the response is in JSON format. ")
	b.WriteString("For each topic, include a 'completed' field set to false.")
	return b.String()
}

func jobsPrompt(skill string, progress int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Based on a user who is learning %s and is %d%% complete with their learning roadmap, ", skill, progress)
	fmt.Fprintf(&b, "find %d relevant beginner or intermediate job listings. ", jobs.Count)
	b.WriteString("Provide the job title, company, a valid application link, and a short description for each. ")
	b.WriteString("Ensure the response is in JSON format.")
	return b.String()
}
