package get_calendar

import (
	"sort"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
)

// ComputeLayout раскладывает события дня по колонкам для абсолютного
// позиционирования в календарной сетке.
//
// Шаг A: blocking-блок целиком подавляется (не обрезается), если у того же
// мастера есть available-блок, хоть как-то пересекающий его интервал.
// available-блоки не подавляются никогда и время в шаге B не занимают.
//
// Шаг B: оставшиеся события группируются в кластеры по связности отношения
// "сталкиваются": общий мастер + пересечение интервалов, кроме пар
// (запись, available-блок) - записи с available-блоками не сталкиваются.
// Кластеры строятся через union-find как настоящие компоненты связности,
// а не попарно от одного якорного события: для цепочек из трёх и более
// пересекающихся событий попарный вариант раскладывал их несогласованно.
// Внутри кластера события сортируются по времени начала (при равенстве -
// в порядке входа) и жадно занимают первую колонку, чей последний жилец
// закончился не позже начала нового события.
//
// Функция не мутирует вход: возвращает новый слайс с копиями событий,
// аннотированными layout-полями
func ComputeLayout(events []domain.CalendarEvent) []domain.CalendarEvent {
	visible := suppressOverriddenBlocks(events)

	// Работаем с копией, вход остаётся нетронутым
	result := make([]domain.CalendarEvent, len(visible))
	copy(result, visible)

	for i := range result {
		result[i].Layout = domain.EventLayout{
			Column:            0,
			TotalColumns:      1,
			WidthPercent:      100,
			LeftOffsetPercent: 0,
		}
	}

	clusters := findClusters(result)

	for _, cluster := range clusters {
		if len(cluster) < 2 {
			continue
		}
		packCluster(result, cluster)
	}

	return result
}

// suppressOverriddenBlocks реализует шаг A: available-блок мастера
// полностью убирает пересекающиеся с ним blocking-блоки того же мастера
func suppressOverriddenBlocks(events []domain.CalendarEvent) []domain.CalendarEvent {
	visible := make([]domain.CalendarEvent, 0, len(events))

	for _, event := range events {
		if event.IsBlockingBlock() && isOverridden(event, events) {
			continue
		}
		visible = append(visible, event)
	}

	return visible
}

func isOverridden(blocking domain.CalendarEvent, events []domain.CalendarEvent) bool {
	for _, other := range events {
		if !other.IsAvailableBlock() {
			continue
		}
		if blocking.SharesStaff(other) && blocking.Overlaps(other) {
			return true
		}
	}
	return false
}

// collides определяет, должны ли два события разъезжаться по колонкам
func collides(a, b domain.CalendarEvent) bool {
	if !a.SharesStaff(b) {
		return false
	}
	if !a.Overlaps(b) {
		return false
	}
	// Записи никогда не сталкиваются с available-блоками
	if a.Type == domain.EventTypeAppointment && b.IsAvailableBlock() {
		return false
	}
	if b.Type == domain.EventTypeAppointment && a.IsAvailableBlock() {
		return false
	}
	return true
}

// findClusters строит компоненты связности отношения collides
func findClusters(events []domain.CalendarEvent) [][]int {
	parent := make([]int, len(events))
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[rb] = ra
		}
	}

	for i := 0; i < len(events); i++ {
		for j := i + 1; j < len(events); j++ {
			if collides(events[i], events[j]) {
				union(i, j)
			}
		}
	}

	byRoot := make(map[int][]int)
	for i := range events {
		root := find(i)
		byRoot[root] = append(byRoot[root], i)
	}

	clusters := make([][]int, 0, len(byRoot))
	for _, members := range byRoot {
		clusters = append(clusters, members)
	}
	return clusters
}

// packCluster жадно распределяет события кластера по колонкам
// (интервальная раскраска: первая колонка, освободившаяся к началу события)
func packCluster(events []domain.CalendarEvent, cluster []int) {
	order := make([]int, len(cluster))
	copy(order, cluster)
	sort.SliceStable(order, func(a, b int) bool {
		return events[order[a]].Start < events[order[b]].Start
	})

	// columnEnds[c] - время окончания последнего события в колонке c
	columnEnds := make([]float64, 0, len(order))

	for _, idx := range order {
		event := &events[idx]

		placed := false
		for col, end := range columnEnds {
			if end <= event.Start {
				event.Layout.Column = col
				columnEnds[col] = event.End
				placed = true
				break
			}
		}
		if !placed {
			event.Layout.Column = len(columnEnds)
			columnEnds = append(columnEnds, event.End)
		}
	}

	total := len(columnEnds)
	width := 100.0 / float64(total)
	for _, idx := range cluster {
		events[idx].Layout.TotalColumns = total
		events[idx].Layout.WidthPercent = width
		events[idx].Layout.LeftOffsetPercent = float64(events[idx].Layout.Column) * width
	}
}
