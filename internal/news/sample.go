package news

import "time"

// SampleArticles returns canned headlines used when every live source
// fails, so a run always produces a video.
func SampleArticles() []Item {
	now := time.Now()
	return []Item{
		{
			Title:       "New open-weight language model tops coding benchmarks",
			Description: "A freshly released open-weight model edges out proprietary rivals on popular code generation leaderboards.",
			Source:      "Sample News",
			Published:   now,
		},
		{
			Title:       "Researchers cut LLM inference cost with smarter KV caching",
			Description: "A caching technique reduces memory traffic during inference, cutting serving costs for long-context workloads.",
			Source:      "Sample News",
			Published:   now.Add(-1 * time.Hour),
		},
		{
			Title:       "On-device speech models reach near-cloud accuracy",
			Description: "Compact speech recognition models now run entirely on phones while approaching datacenter accuracy.",
			Source:      "Sample News",
			Published:   now.Add(-2 * time.Hour),
		},
		{
			Title:       "Vision-language models learn to read charts and diagrams",
			Description: "Multimodal models show strong gains on chart understanding tasks after training on synthetic diagrams.",
			Source:      "Sample News",
			Published:   now.Add(-3 * time.Hour),
		},
		{
			Title:       "Robotics labs adopt foundation models for task planning",
			Description: "Several labs report faster task generalization by pairing manipulation stacks with pretrained planners.",
			Source:      "Sample News",
			Published:   now.Add(-4 * time.Hour),
		},
	}
}
