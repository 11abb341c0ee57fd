package scenetree

import (
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-frame timing and draw metrics.
// Only populated when the editor is in debug mode.
type debugStats struct {
	animateTime  time.Duration
	layoutTime   time.Duration
	drawTime     time.Duration
	uiTime       time.Duration
	editTime     time.Duration
	commandCount int
	nodeCount    int
	editCount    int
}

func (s debugStats) total() time.Duration {
	return s.animateTime + s.layoutTime + s.drawTime + s.uiTime + s.editTime
}

// debugLogInterval is the number of frames between timing reports.
const debugLogInterval = FramesPerSecond

// debugLog writes the frame stats at debug level.
func debugLog(log *zap.Logger, stats debugStats) {
	log.Debug("frame",
		zap.Duration("animate", stats.animateTime),
		zap.Duration("layout", stats.layoutTime),
		zap.Duration("draw", stats.drawTime),
		zap.Duration("ui", stats.uiTime),
		zap.Duration("edits", stats.editTime),
		zap.Duration("total", stats.total()),
		zap.Int("commands", stats.commandCount),
		zap.Int("nodes", stats.nodeCount),
		zap.Int("edits_applied", stats.editCount))
}

// debugMaxTreeDepth is the depth above which an AddChild logs a warning.
const debugMaxTreeDepth = 32

func checkTreeDepth(log *zap.Logger, f Forest, id uint32) {
	if depth := f.Depth(id); depth > debugMaxTreeDepth {
		log.Warn("tree depth exceeds threshold",
			zap.Uint32("id", id),
			zap.Int("depth", depth),
			zap.Int("threshold", debugMaxTreeDepth))
	}
}

// debugMaxChildCount is the child count above which an AddChild logs a warning.
const debugMaxChildCount = 1000

func checkChildCount(log *zap.Logger, n *SceneNode) {
	if n == nil {
		return
	}
	if len(n.Children) > debugMaxChildCount {
		log.Warn("node has many children",
			zap.String("name", n.Name),
			zap.Int("children", len(n.Children)),
			zap.Int("threshold", debugMaxChildCount))
	}
}
