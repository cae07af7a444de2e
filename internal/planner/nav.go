package planner

// Navigator tracks the drill-down position in the planner hierarchy. The
// zero value starts at the year level. Positions live only for the session.
type Navigator struct {
	level Level
	month int // 1-12, meaningful at LevelMonth and below
	week  int // 1-5, meaningful at LevelWeek and below
	day   int // 0-6 slot index, meaningful at LevelDay
}

func (n *Navigator) Level() Level { return n.level }
func (n *Navigator) Month() int   { return n.month }
func (n *Navigator) Week() int    { return n.week }
func (n *Navigator) Day() int     { return n.day }

// Drill descends one level to the given child coordinate. Day slots that
// resolve to no calendar date are rejected, as are weeks past the month's
// last day.
func (n *Navigator) Drill(child int) bool {
	switch n.level {
	case LevelYear:
		if child < 1 || child > 12 {
			return false
		}
		n.month = child
	case LevelMonth:
		if child < 1 || child > 5 || (child-1)*7+1 > DaysInMonth(n.month) {
			return false
		}
		n.week = child
	case LevelWeek:
		if _, ok := ResolveDate(n.month, n.week, child); !ok {
			return false
		}
		n.day = child
	default:
		return false
	}
	n.level++
	return true
}

// Back ascends one level, discarding the abandoned coordinate.
func (n *Navigator) Back() bool {
	switch n.level {
	case LevelMonth:
		n.month = 0
	case LevelWeek:
		n.week = 0
	case LevelDay:
		n.day = 0
	default:
		return false
	}
	n.level--
	return true
}

// JumpTo truncates the path to the given level. It never descends.
func (n *Navigator) JumpTo(level Level) {
	for n.level > level {
		n.Back()
	}
}

// Key is the goal-store period key for the current position.
func (n *Navigator) Key() string {
	return PeriodKey(n.level, n.month, n.week, n.day)
}
