package service

import (
	"fmt"
	"strconv"
	"strings"

	"smartlandlord/internal/domain"
)

// ContractService 合约文书与催缴文案的公版模板渲染
type ContractService struct{}

func NewContractService() *ContractService {
	return &ContractService{}
}

// RenderContract 从租客档案生成住宅租赁契约全文。
// 空栏位填底线占位，方便打印后手写补齐。
func (s *ContractService) RenderContract(t domain.Tenant) string {
	name := orBlank(t.Name, "________")
	idNumber := orBlank(t.IDNumber, "________________")
	room := orBlank(t.RoomNumber, "____")
	phone := orBlank(t.Phone, "________________")
	startDate := orBlank(t.MoveInDate, "    年    月    日")
	endDate := orBlank(t.LeaseEndDate, "    年    月    日")
	clauses := orBlank(t.ContractClauses, "（無特別約定事項）")

	rent := "________"
	if t.RentAmount > 0 {
		rent = groupAmount(t.RentAmount)
	}
	deposit := "________"
	if t.Deposit > 0 {
		deposit = groupAmount(t.Deposit)
	}

	return fmt.Sprintf(`住宅租賃契約書 (內政部範本參考)

第一條：租賃標的
    房屋所在地：本物業 %s 室。

第二條：租賃期間
    自 %s 起至 %s 止。

第三條：租金約定及支付
    每月租金為新臺幣 %s 元整。
    承租人應於每月____日前支付租金，不得藉詞拖延。

第四條：押金約定及返還
    押金為新臺幣 %s 元整（最高不得超過二個月租金之總額）。
    承租人於租賃期滿交還房屋並扣除欠稅費後，由出租人無息返還。

第五條：當事人資訊
    承租人：%s
    身分證字號：%s
    聯絡電話：%s

第六條：特別約定事項
    %s

第七條：返還義務
    租賃期滿，承租人應將租賃物遷空交還出租人。

--- 出租人（簽章）：________________    承租人（簽章）：________________`,
		room, startDate, endDate, rent, deposit, name, idNumber, phone, clauses)
}

// RenderPaymentReminder 生成可直接贴进 LINE/简讯的催缴文案
func (s *ContractService) RenderPaymentReminder(p domain.PaymentRecord, daysOverdue int) string {
	name := orBlank(p.TenantName, "租客")
	var b strings.Builder
	fmt.Fprintf(&b, "%s 您好：\n\n", name)
	fmt.Fprintf(&b, "提醒您，您有一筆款項尚未繳納。\n")
	fmt.Fprintf(&b, "應繳金額：新臺幣 %s 元\n", groupAmount(p.Amount))
	fmt.Fprintf(&b, "繳費期限：%s\n", p.DueDate)
	if daysOverdue > 0 {
		fmt.Fprintf(&b, "目前已逾期 %d 天。\n", daysOverdue)
	}
	fmt.Fprintf(&b, "\n請您於近日內完成繳費，若已繳納請忽略此訊息。\n如有任何問題歡迎與我們聯繫，謝謝您的配合。\n\n房東敬上")
	return b.String()
}

func orBlank(v, blank string) string {
	if v == "" {
		return blank
	}
	return v
}

// groupAmount 千分位格式，如 15000 -> 15,000
func groupAmount(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.Itoa(n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
