package timetable

import (
	"errors"
	"fmt"
	"os"

	"github.com/rhyrak/go-timetable/internal/extract"
	"gopkg.in/yaml.v3"
)

// Clock is a time of day in minutes. In YAML it is written as "HH:MM".
type Clock int

func (c *Clock) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	m, ok := extract.ParseMinutes(s)
	if !ok {
		return fmt.Errorf("line %d: invalid time of day %q", value.Line, s)
	}
	*c = Clock(m)
	return nil
}

func (c Clock) MarshalYAML() (interface{}, error) {
	return extract.FormatMinutes(int(c)), nil
}

// ColumnCandidates lists, per logical role, the header names to look for.
type ColumnCandidates struct {
	Room       []string `yaml:"room"`
	Course     []string `yaml:"course"`
	Teacher    []string `yaml:"teacher"`
	Code       []string `yaml:"code"`
	Theory     []string `yaml:"theory_units"`
	Practice   []string `yaml:"practice_units"`
	Group      []string `yaml:"group"`
	Degree     []string `yaml:"degree"`
	Enrollment []string `yaml:"enrollment"`
	Start      []string `yaml:"start"`
	End        []string `yaml:"end"`
}

type Configuration struct {
	SlotMinutes     int              `yaml:"slot_minutes"`
	DayStart        Clock            `yaml:"day_start"`
	FallbackSpan    int              `yaml:"fallback_span_minutes"` // used when a day has no end times
	SheetPrefix     string           `yaml:"sheet_prefix"`
	RoomAxisLabel   string           `yaml:"room_axis_label"`
	CommentAuthor   string           `yaml:"comment_author"`
	RoomColumnWidth float64          `yaml:"room_column_width"`
	SlotColumnWidth float64          `yaml:"slot_column_width"`
	RowHeight       float64          `yaml:"row_height"`
	RightToLeft     bool             `yaml:"right_to_left"`
	Parallel        bool             `yaml:"parallel"`
	Columns         ColumnCandidates `yaml:"columns"`
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		SlotMinutes:     30,
		DayStart:        8 * 60,
		FallbackSpan:    10 * 60,
		SheetPrefix:     "جدول کلاسی ",
		RoomAxisLabel:   "مکان / ساعت",
		CommentAuthor:   "برنامه\u200cساز",
		RoomColumnWidth: 25,
		SlotColumnWidth: 8,
		RowHeight:       22,
		RightToLeft:     true,
		Parallel:        false,
		Columns: ColumnCandidates{
			Room:       []string{"مکان", "نام مکان"},
			Course:     []string{"نام درس", "نام کلاس درس", "نام کلاس"},
			Teacher:    []string{"نام استاد", "نام کامل استاد", "PR S_FNAME", "نام کامل"},
			Code:       []string{"کد ارائه درس", "کد ارائه", "کد درس"},
			Theory:     []string{"واحد نظری", "تعداد واحد نظری", "تعداد واحد"},
			Practice:   []string{"واحد عملی", "تعداد واحد عملی"},
			Group:      []string{"گروه آموزشی", "نام گروه آموزشی", "گروه"},
			Degree:     []string{"مقطع"},
			Enrollment: []string{"تعداد ثبت نامی", "تعداد ثبت نام"},
			Start:      []string{"ساعت شروع", "ساعت شروع کلاس", "M", "BV"},
			End:        []string{"ساعت پایان", "ساعت پایان کلاس", "N", "BW"},
		},
	}
}

// LoadConfiguration reads a YAML file over the defaults. Keys missing from
// the file keep their default value.
func LoadConfiguration(path string) (*Configuration, error) {
	cfg := NewDefaultConfiguration()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the grid builder cannot work with.
func (c *Configuration) Validate() error {
	if c.SlotMinutes <= 0 || c.SlotMinutes > 24*60 {
		return fmt.Errorf("slot_minutes must be in (0, 1440], got %d", c.SlotMinutes)
	}
	if c.FallbackSpan < c.SlotMinutes {
		return fmt.Errorf("fallback_span_minutes must be at least one slot, got %d", c.FallbackSpan)
	}
	if len(c.Columns.Room) == 0 {
		return errors.New("columns.room needs at least one candidate")
	}
	return nil
}
