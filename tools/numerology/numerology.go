package numerology

// Meanings of the life numbers, 11, 22 and 33 are master numbers
var Meanings = map[int]string{
	1:  "Vůdce - nezávislý, ambiciózní, originální",
	2:  "Diplomat - citlivý, spolupracující, mírumilovný",
	3:  "Tvůrce - kreativní, expresivní, optimistický",
	4:  "Stavitel - praktický, organizovaný, spolehlivý",
	5:  "Dobrodruh - svobodomyslný, všestranný, zvědavý",
	6:  "Pečovatel - zodpovědný, milující, ochranitelský",
	7:  "Myslitel - analytický, introspektivní, duchovní",
	8:  "Achiever - ambiciózní, materialistický, mocný",
	9:  "Humanista - soucitný, idealistický, velkorysý",
	11: "Mistr Intuice - vizionář, inspirativní, duchovní",
	22: "Mistr Stavitel - praktický vizionář, mocný",
	33: "Mistr Učitel - soucitný, moudrý, duchovní průvodce",
}

// UnknownMeaning is used for numbers without a meaning, only 0 in practice
const UnknownMeaning = "Neznámý význam"

// IsMaster reports whether n is a master number
func IsMaster(n int) bool {
	return n == 11 || n == 22 || n == 33
}

// DigitSum returns the sum of the decimal digits of n
func DigitSum(n int) int {
	if n < 0 {
		n = -n
	}
	var sum int
	for ; n > 0; n /= 10 {
		sum += n % 10
	}
	return sum
}

// Reduce repeats digit sums until n is a single digit or a master number
func Reduce(n int) int {
	for n > 9 && !IsMaster(n) {
		n = DigitSum(n)
	}
	return n
}

// Meaning returns the meaning of a life number
func Meaning(n int) string {
	if m, ok := Meanings[n]; ok {
		return m
	}
	return UnknownMeaning
}
