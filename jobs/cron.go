package jobs

import (
	"context"
	"fmt"
	"log"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// NoShowSweeper định nghĩa interface cho việc quét đơn vắng mặt
type NoShowSweeper interface {
	SweepNoShows(ctx context.Context) (int, error)
}

var noShowSweeper NoShowSweeper

// SetNoShowSweeper thiết lập implementation cho NoShowSweeper
func SetNoShowSweeper(sweeper NoShowSweeper) {
	noShowSweeper = sweeper
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Quét đơn vắng mặt mỗi 10 phút: đơn Approved đã quá giờ kết thúc mà
	// chưa nhận phòng sẽ chuyển sang NoShow
	_, err := c.AddFunc("*/10 * * * *", func() {
		if noShowSweeper == nil {
			log.Println("Lỗi: NoShowSweeper chưa được thiết lập")
			return
		}
		swept, err := noShowSweeper.SweepNoShows(context.Background())
		if err != nil {
			log.Printf("Lỗi khi quét đơn vắng mặt: %v", err)
			return
		}
		if swept > 0 {
			log.Printf("Đã đánh vắng mặt %d đơn", swept)
			m.Broadcast([]byte(fmt.Sprintf("🔔 %d đơn đặt phòng đã bị đánh vắng mặt.", swept)))
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
