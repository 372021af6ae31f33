package extract

// receiptPrompt asks the model to reject non-receipts and otherwise return
// items and charges in the Result JSON shape.
const receiptPrompt = `
INITIAL DETECTION - Carefully analyze if this image is ACTUALLY a receipt/bill/invoice:
- A valid receipt MUST have ALL of these elements:
* A clear list of purchased items with corresponding prices
* A structured format with items aligned in rows/columns
* A clearly marked total amount
* Usually contains business name, date, and payment information
* Consistent currency symbols before numerical values

- This is NOT a receipt if ANY of these are true:
* Contains mathematical equations, formulas, or academic notation
* Primarily consists of paragraphs of text without itemized prices
* Is a menu, poster, advertisement, or academic paper
* Lacks a clear itemized structure and total amount

If it is NOT a receipt/bill, respond with: {"is_receipt": false, "reason": "explanation"}.

If it IS a receipt/bill, extract the data with EXACTLY these requirements:
1. Items must contain product purchases only with their FINAL prices (not MRP)
2. total_bill must be the actual amount paid by the customer
3. Exclude every line marked FREE or with a zero value
4. Exclude product or MRP discounts, they are already part of item prices
5. The taxes array holds only non-zero service charges, handling or delivery fees,
   taxes such as GST or VAT, and final bill discounts as negative amounts
6. Never include subtotals or order summary lines in taxes
7. Format all monetary values as plain numbers without currency symbols

Return JSON matching this schema:
{
  "is_receipt": true,
  "reason": "",
  "file_name": "string",
  "topics": ["string"],
  "languages": ["string"],
  "ocr_contents": {
    "items": [{"name": "string", "price": number}],
    "total_order_bill_details": {
      "total_bill": number,
      "taxes": [{"name": "string", "amount": number}]
    }
  }
}
`
