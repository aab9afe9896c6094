package recommend

// Rotate returns priority shifted left by shift positions, cyclic.
// Rotating by shift and then by len-shift restores the original order.
func Rotate(priority []string, shift int) []string {
	n := len(priority)
	if n == 0 {
		return []string{}
	}

	shift %= n
	if shift < 0 {
		shift += n
	}

	rotated := make([]string, 0, n)
	rotated = append(rotated, priority[shift:]...)
	rotated = append(rotated, priority[:shift]...)
	return rotated
}

// BuildDeal assembles one deal from the score-sorted item list.
//
// Items are grouped by category keeping score order, so only each
// category's best item is ever picked. The rotated priority list is
// walked once: a category whose line would push the total past the hard
// ceiling is skipped outright (no cheaper substitute), and the walk
// stops as soon as the soft target is reached. The returned total never
// exceeds the hard ceiling; it may fall short of the target, and the
// deal may be empty.
func BuildDeal(
	scored []ScoredItem,
	peoples int,
	envelope Envelope,
	priority []string,
	shift int,
) ([]DealItem, int) {

	grouped := map[string][]ScoredItem{}
	for _, item := range scored {
		grouped[item.Category] = append(grouped[item.Category], item)
	}

	dealItems := []DealItem{}
	totalCost := 0

	for _, cat := range Rotate(priority, shift) {
		bucket, ok := grouped[cat]
		if !ok {
			continue
		}

		best := bucket[0]

		qty := peoples
		if qty < 1 {
			qty = 1
		}
		cost := qty * best.Price

		if totalCost+cost > envelope.Hard {
			continue
		}

		dealItems = append(dealItems, DealItem{
			Name:       best.Name,
			Category:   best.Category,
			Qty:        qty,
			UnitPrice:  best.Price,
			TotalPrice: cost,
		})

		totalCost += cost

		if totalCost >= envelope.Soft {
			break
		}
	}

	return dealItems, totalCost
}
