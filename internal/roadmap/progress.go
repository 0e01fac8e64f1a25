package roadmap

// Counts returns the number of completed topics and the total across all
// weeks.
func Counts(p *Plan) (completed, total int) {
	if p == nil {
		return 0, 0
	}
	for _, w := range p.Weeks {
		for _, t := range w.Topics {
			total++
			if t.Completed {
				completed++
			}
		}
	}
	return completed, total
}

// Progress is the completed share of topics as a whole percentage,
// rounded half up. A plan with no topics is at 0.
func Progress(p *Plan) int {
	completed, total := Counts(p)
	if total == 0 {
		return 0
	}
	// round(100*c/t) without floats: floor((200c + t) / 2t)
	return (200*completed + total) / (2 * total)
}
