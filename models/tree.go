package models

// CollectDescendantIDs 基于邻接表（pid -> 子id列表）做迭代BFS，
// 返回根id集合及其全部子孙id，结果去重。叶子节点只返回自身。
func CollectDescendantIDs(children map[uint][]uint, rootIDs []uint) []uint {
	visited := make(map[uint]bool, len(rootIDs))
	result := make([]uint, 0, len(rootIDs))

	queue := make([]uint, 0, len(rootIDs))
	for _, id := range rootIDs {
		if visited[id] {
			continue
		}
		visited[id] = true
		result = append(result, id)
		queue = append(queue, id)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range children[current] {
			if visited[child] {
				continue
			}
			visited[child] = true
			result = append(result, child)
			queue = append(queue, child)
		}
	}

	return result
}

// DiffIDSets 计算id集合差异：toAdd为新集合独有，toRemove为旧集合独有
func DiffIDSets(newIDs, oldIDs []uint) (toAdd, toRemove []uint) {
	newSet := make(map[uint]bool, len(newIDs))
	for _, id := range newIDs {
		newSet[id] = true
	}
	oldSet := make(map[uint]bool, len(oldIDs))
	for _, id := range oldIDs {
		oldSet[id] = true
	}
	for _, id := range newIDs {
		if !oldSet[id] {
			toAdd = append(toAdd, id)
		}
	}
	for _, id := range oldIDs {
		if !newSet[id] {
			toRemove = append(toRemove, id)
		}
	}
	return toAdd, toRemove
}

// FindDuplicates 返回列表中出现超过一次的元素（每个只报一次）
func FindDuplicates(list []string) []string {
	seen := make(map[string]int, len(list))
	var duplicates []string
	for _, item := range list {
		seen[item]++
		if seen[item] == 2 {
			duplicates = append(duplicates, item)
		}
	}
	return duplicates
}
