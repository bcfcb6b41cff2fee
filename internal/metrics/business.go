package metrics

// IncrementCourseCreated increments course creation counter
func (m *Metrics) IncrementCourseCreated() {
	m.safeExecute("IncrementCourseCreated", func() {
		m.CourseCreatedTotal.Inc()
	})
}

// AddPaymentsSettled adds n settled payments
func (m *Metrics) AddPaymentsSettled(n int) {
	m.safeExecute("AddPaymentsSettled", func() {
		m.PaymentSettledTotal.Add(float64(n))
	})
}

// RecordLifecycleTransition counts a lifecycle transition outcome
func (m *Metrics) RecordLifecycleTransition(entity, transition, result string) {
	m.safeExecute("RecordLifecycleTransition", func() {
		m.LifecycleTransitions.WithLabelValues(entity, transition, result).Inc()
	})
}

// SetCoursesTotal sets total courses gauge
func (m *Metrics) SetCoursesTotal(count int64) {
	m.safeExecute("SetCoursesTotal", func() {
		m.CoursesTotal.Set(float64(count))
	})
}

// SetVideosTotal sets total videos gauge
func (m *Metrics) SetVideosTotal(count int64) {
	m.safeExecute("SetVideosTotal", func() {
		m.VideosTotal.Set(float64(count))
	})
}

// SetPaidPaymentsTotal sets settled payments gauge
func (m *Metrics) SetPaidPaymentsTotal(count int64) {
	m.safeExecute("SetPaidPaymentsTotal", func() {
		m.PaidPaymentsTotal.Set(float64(count))
	})
}
