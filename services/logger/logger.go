package logger

import "log"

// Level ngưỡng log, chỉ ghi các bản ghi từ ngưỡng này trở lên
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger là bề mặt log mà các service đặt phòng phụ thuộc vào
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger ghi ra stderr qua log chuẩn, đủ dùng cho backend đặt phòng
type DefaultLogger struct {
	level Level
}

// NewDefaultLogger tạo logger với ngưỡng cho trước
func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{
		level: level,
	}
}

// Info ghi các sự kiện nghiệp vụ bình thường như duyệt đơn, quét vắng mặt
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		log.Printf("[INFO] "+format, v...)
	}
}

// Error ghi lỗi cần người vận hành để ý
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		log.Printf("[ERROR] "+format, v...)
	}
}

// Debug ghi chi tiết khi chẩn đoán
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		log.Printf("[DEBUG] "+format, v...)
	}
}
