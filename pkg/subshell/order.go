package subshell

// Spec 填充顺序中的一项
type Spec struct {
	Period int
	Kind   Kind
}

// FillOrder 马德隆规则近似的亚层填充顺序
var FillOrder = [...]Spec{
	{1, KindS},
	{2, KindS},
	{2, KindP},
	{3, KindS},
	{3, KindP},
	{4, KindS},
	{3, KindD},
	{4, KindP},
	{5, KindS},
	{4, KindD},
	{5, KindP},
	{6, KindS},
	{4, KindF},
	{5, KindD},
	{6, KindP},
	{7, KindS},
	{5, KindF},
	{6, KindD},
	{7, KindP},
}

// TotalCapacity 填充顺序中所有亚层的容量之和
func TotalCapacity() int {
	total := 0
	for _, spec := range FillOrder {
		total += spec.Kind.Capacity()
	}
	return total
}
