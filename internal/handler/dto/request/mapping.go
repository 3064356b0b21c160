package request

import (
	"time"

	"github.com/jinzhu/copier"
)

var copyOption = copier.Option{
	IgnoreEmpty: false,
	Converters: []copier.TypeConverter{
		{
			SrcType: Date{},
			DstType: time.Time{},
			Fn: func(src interface{}) (interface{}, error) {
				return src.(Date).Time, nil
			},
		},
		{
			SrcType: &Date{},
			DstType: &time.Time{},
			Fn: func(src interface{}) (interface{}, error) {
				d, _ := src.(*Date)
				if d == nil {
					return (*time.Time)(nil), nil
				}
				t := d.Time
				return &t, nil
			},
		},
	},
}

// ToCommand copies a bound request into its use case command by field name.
func ToCommand[T any](req any) (T, error) {
	var cmd T
	err := copier.CopyWithOption(&cmd, req, copyOption)
	return cmd, err
}
