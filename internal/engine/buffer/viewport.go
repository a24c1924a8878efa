package buffer

// SetViewSize tells the buffer how many rows are visible. The renderer
// calls this before drawing so scroll commands know the page size.
func (b *Buffer) SetViewSize(rows int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if rows < 1 {
		rows = 1
	}
	b.viewHeight = rows
	b.clampScrollLocked()
}

// TopRow returns the first visible row after following the cursor.
func (b *Buffer) TopRow() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Keep the cursor inside the viewport.
	if b.cursor.Row < b.topRow {
		b.topRow = b.cursor.Row
	}
	if b.cursor.Row >= b.topRow+b.viewHeight {
		b.topRow = b.cursor.Row - b.viewHeight + 1
	}
	b.clampScrollLocked()
	return b.topRow
}

// ScrollLines scrolls the viewport by n rows (positive scrolls down).
func (b *Buffer) ScrollLines(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.topRow += n
	b.clampScrollLocked()
}

// ScrollHalfPage scrolls by half the view height in the given direction.
func (b *Buffer) ScrollHalfPage(down bool) {
	b.scrollView(down, 2)
}

// ScrollPage scrolls by a full view height in the given direction.
func (b *Buffer) ScrollPage(down bool) {
	b.scrollView(down, 1)
}

func (b *Buffer) scrollView(down bool, div int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	rows := b.viewHeight / div
	if rows < 1 {
		rows = 1
	}
	if down {
		b.topRow += rows
	} else {
		b.topRow -= rows
	}
	b.clampScrollLocked()
}

func (b *Buffer) clampScrollLocked() {
	max := len(b.lines) - 1
	if b.topRow > max {
		b.topRow = max
	}
	if b.topRow < 0 {
		b.topRow = 0
	}
}
