package systems

// EmitController decides how many particles an emitter spawns on each tick.
//
// HowMany is called once per emitter update with the tick duration and the
// number of particles the emitter currently owns. IsComplete reports that the
// controller will never emit again; an emitter whose controller is complete
// and owns no particles is exhausted.
type EmitController interface {
	HowMany(dt float64, current int) int
	IsComplete() bool
}

// EmitBurst 一次性发射 Count 个粒子，之后立即完成
type EmitBurst struct {
	count   int
	emitted bool
}

// NewEmitBurst 创建一次性爆发控制器
func NewEmitBurst(count int) *EmitBurst {
	return &EmitBurst{count: count}
}

func (c *EmitBurst) HowMany(dt float64, current int) int {
	if c.emitted {
		return 0
	}
	c.emitted = true
	return c.count
}

func (c *EmitBurst) IsComplete() bool {
	return c.emitted
}

// EmitMaintainCount 保持发射器拥有的粒子数不少于 Count，永不完成
type EmitMaintainCount struct {
	count int
}

// NewEmitMaintainCount 创建维持数量控制器
func NewEmitMaintainCount(count int) *EmitMaintainCount {
	return &EmitMaintainCount{count: count}
}

func (c *EmitMaintainCount) HowMany(dt float64, current int) int {
	if n := c.count - current; n > 0 {
		return n
	}
	return 0
}

func (c *EmitMaintainCount) IsComplete() bool {
	return false
}

// EmitInterval 每隔 interval 秒发射一个粒子，永不完成
//
// 不足一个间隔的时间会累积到下一个 tick，所以间隔小于 tick 时
// 单个 tick 可能发射多个粒子。
type EmitInterval struct {
	interval  float64
	carryover float64
}

// NewEmitInterval 创建固定间隔控制器，interval 单位为秒
func NewEmitInterval(interval float64) *EmitInterval {
	return &EmitInterval{interval: interval}
}

func (c *EmitInterval) HowMany(dt float64, current int) int {
	if c.interval <= 0 {
		return 0
	}
	c.carryover += dt
	n := 0
	for c.carryover >= c.interval {
		c.carryover -= c.interval
		n++
	}
	return n
}

func (c *EmitInterval) IsComplete() bool {
	return false
}

// EmitIntervalWithCount 按固定间隔发射，累计发射 count 个后完成
type EmitIntervalWithCount struct {
	EmitInterval
	remaining int
}

// NewEmitIntervalWithCount 创建限量间隔控制器
func NewEmitIntervalWithCount(interval float64, count int) *EmitIntervalWithCount {
	return &EmitIntervalWithCount{
		EmitInterval: EmitInterval{interval: interval},
		remaining:    count,
	}
}

func (c *EmitIntervalWithCount) HowMany(dt float64, current int) int {
	if c.IsComplete() {
		return 0
	}
	n := c.EmitInterval.HowMany(dt, current)
	if n > c.remaining {
		n = c.remaining
	}
	c.remaining -= n
	return n
}

func (c *EmitIntervalWithCount) IsComplete() bool {
	return c.remaining <= 0
}

// EmitIntervalWithTime 按固定间隔发射，持续 lifetime 秒后完成
type EmitIntervalWithTime struct {
	EmitInterval
	lifetime float64
	elapsed  float64
}

// NewEmitIntervalWithTime 创建限时间隔控制器
func NewEmitIntervalWithTime(interval, lifetime float64) *EmitIntervalWithTime {
	return &EmitIntervalWithTime{
		EmitInterval: EmitInterval{interval: interval},
		lifetime:     lifetime,
	}
}

func (c *EmitIntervalWithTime) HowMany(dt float64, current int) int {
	if c.IsComplete() {
		return 0
	}
	c.elapsed += dt
	return c.EmitInterval.HowMany(dt, current)
}

func (c *EmitIntervalWithTime) IsComplete() bool {
	return c.elapsed >= c.lifetime
}
