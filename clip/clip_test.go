// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()

	c, err := New(100, 1, 8000, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if c.Len() != 100 {
		t.Errorf("Len() = %d, want 100", c.Len())
	}
	if c.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", c.Channels())
	}
	if c.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", c.SampleRate())
	}
	if c.Streaming() {
		t.Error("Streaming() = true, want false")
	}
	if len(c.Data()) != 100 {
		t.Errorf("len(Data()) = %d, want 100", len(c.Data()))
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		length   int
		channels int
		wantErr  error
	}{
		{"zero length", 0, 1, ErrInvalidLength},
		{"negative length", -5, 1, ErrInvalidLength},
		{"zero channels", 10, 0, ErrInvalidChannels},
		{"negative channels", 10, -2, ErrInvalidChannels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.length, tt.channels, 8000, false); !errors.Is(err, tt.wantErr) {
				t.Errorf("New(%d, %d) error = %v, want %v", tt.length, tt.channels, err, tt.wantErr)
			}
		})
	}
}

func TestNew_Stereo(t *testing.T) {
	t.Parallel()

	c, err := New(50, 2, 44100, true)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if len(c.Data()) != 100 {
		t.Errorf("len(Data()) = %d, want 100 (frames × channels)", len(c.Data()))
	}
	if !c.Streaming() {
		t.Error("Streaming() = false, want true")
	}
}

func TestSetData_GetData(t *testing.T) {
	t.Parallel()

	c, err := New(4, 1, 8000, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := c.SetData([]float64{0.1, 0.2, 0.3, 0.4}, 0); err != nil {
		t.Fatalf("SetData() error = %v", err)
	}

	into := make([]float64, 4)
	if err := c.GetData(into, 0); err != nil {
		t.Fatalf("GetData() error = %v", err)
	}

	want := []float64{0.1, 0.2, 0.3, 0.4}
	for i := range want {
		if into[i] != want[i] {
			t.Errorf("into[%d] = %v, want %v", i, into[i], want[i])
		}
	}
}

func TestSetData_Offset(t *testing.T) {
	t.Parallel()

	c, _ := New(4, 1, 8000, false)
	if err := c.SetData([]float64{0.9, 0.8}, 2); err != nil {
		t.Fatalf("SetData() error = %v", err)
	}

	data := c.Data()
	if data[0] != 0 || data[1] != 0 {
		t.Errorf("head = %v, want zeros", data[:2])
	}
	if data[2] != 0.9 || data[3] != 0.8 {
		t.Errorf("tail = %v, want [0.9 0.8]", data[2:])
	}
}

func TestSetData_SilentTruncation(t *testing.T) {
	t.Parallel()

	c, _ := New(2, 1, 8000, false)

	// Writing more than capacity drops the overflow without error.
	if err := c.SetData([]float64{0.1, 0.2, 0.3, 0.4}, 0); err != nil {
		t.Fatalf("SetData() error = %v", err)
	}

	data := c.Data()
	if data[0] != 0.1 || data[1] != 0.2 {
		t.Errorf("data = %v, want [0.1 0.2]", data)
	}
}

func TestSetData_OffsetOutOfRange(t *testing.T) {
	t.Parallel()

	c, _ := New(4, 1, 8000, false)
	for _, offset := range []int{-1, 4, 100} {
		if err := c.SetData([]float64{0.1}, offset); !errors.Is(err, ErrOffsetOutOfRange) {
			t.Errorf("SetData(offset=%d) error = %v, want ErrOffsetOutOfRange", offset, err)
		}
	}
}

func TestGetData_OffsetOutOfRange(t *testing.T) {
	t.Parallel()

	c, _ := New(4, 1, 8000, false)
	into := make([]float64, 4)
	for _, offset := range []int{-1, 4} {
		if err := c.GetData(into, offset); !errors.Is(err, ErrOffsetOutOfRange) {
			t.Errorf("GetData(offset=%d) error = %v, want ErrOffsetOutOfRange", offset, err)
		}
	}
}

func TestGetData_ShortRead(t *testing.T) {
	t.Parallel()

	c, _ := New(4, 1, 8000, false)
	c.SetData([]float64{0.1, 0.2, 0.3, 0.4}, 0)

	into := make([]float64, 2)
	if err := c.GetData(into, 1); err != nil {
		t.Fatalf("GetData() error = %v", err)
	}
	if into[0] != 0.2 || into[1] != 0.3 {
		t.Errorf("into = %v, want [0.2 0.3]", into)
	}
}

func TestBuffer_SharesStorage(t *testing.T) {
	t.Parallel()

	c, _ := New(2, 1, 8000, false)
	buf := c.Buffer()

	buf.Data[0] = 0.5
	if c.Data()[0] != 0.5 {
		t.Error("Buffer() does not share storage with the clip")
	}
	if buf.Format.SampleRate != 8000 || buf.Format.NumChannels != 1 {
		t.Errorf("Buffer().Format = %+v, want 8000 Hz mono", buf.Format)
	}
}
