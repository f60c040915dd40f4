package navmesh

const groupUndefined = -1

// buildTriangleGroups 按相邻关系泛洪划分连通区域 区域id从0开始按发现顺序递增
// 每个区域内的三角形保持原数组顺序
func buildTriangleGroups(mesh *TriangleMesh) [][]*Triangle {
	groupId := 0
	stack := make([]int, 0)
	for i, triangle := range mesh.Triangles {
		if triangle.Group != groupUndefined {
			continue
		}
		triangle.Group = groupId
		stack = append(stack, i)
		for len(stack) > 0 {
			current := mesh.Triangles[stack[len(stack)-1]]
			stack = stack[:len(stack)-1]
			for _, neighbourIndex := range current.Neighbours {
				neighbour := mesh.Triangles[neighbourIndex]
				if neighbour.Group == groupUndefined {
					neighbour.Group = groupId
					stack = append(stack, neighbourIndex)
				}
			}
		}
		groupId++
	}
	groups := make([][]*Triangle, groupId)
	for _, triangle := range mesh.Triangles {
		groups[triangle.Group] = append(groups[triangle.Group], triangle)
	}
	return groups
}
