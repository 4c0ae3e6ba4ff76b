package calendar

import "fmt"

// Leap-cycle break years of the Jalali calendar. Conversion is defined for
// years in [breaks[0], breaks[len-1]).
var breaks = []int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181, 1210,
	1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

type yearInfo struct {
	leap  int // years since the last leap year, 0 means jy itself is leap
	gy    int // Gregorian year holding Farvardin 1st
	march int // day of March holding Farvardin 1st
}

func jalCal(jy int) (yearInfo, error) {
	bl := len(breaks)
	gy := jy + 621
	leapJ := -14
	jp := breaks[0]

	if jy < jp || jy >= breaks[bl-1] {
		return yearInfo{}, fmt.Errorf("jalali year %d out of range", jy)
	}

	jump := 0
	for i := 1; i < bl; i++ {
		jm := breaks[i]
		jump = jm - jp
		if jy < jm {
			break
		}
		leapJ = leapJ + jump/33*8 + (jump%33)/4
		jp = jm
	}
	n := jy - jp

	leapJ = leapJ + n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapJ++
	}

	leapG := gy/4 - (gy/100+1)*3/4 - 150
	march := 20 + leapJ - leapG

	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	leap := ((n+1)%33 - 1) % 4
	if leap == -1 {
		leap = 4
	}

	return yearInfo{leap: leap, gy: gy, march: march}, nil
}

// gregorianToDayNumber returns the Julian day number of a Gregorian date.
func gregorianToDayNumber(gy, gm, gd int) int {
	d := (gy+(gm-8)/6+100100)*1461/4 + (153*((gm+9)%12)+2)/5 + gd - 34840408
	return d - (gy+100100+(gm-8)/6)/100*3/4 + 752
}

func dayNumberToGregorian(jdn int) (gy, gm, gd int) {
	j := 4*jdn + 139361631
	j = j + (4*jdn+183187720)/146097*3/4*4 - 3908
	i := (j%1461)/4*5 + 308
	gd = (i%153)/5 + 1
	gm = (i/153)%12 + 1
	gy = j/1461 - 100100 + (8-gm)/6
	return gy, gm, gd
}

func jalaliToDayNumber(jy, jm, jd int) (int, error) {
	info, err := jalCal(jy)
	if err != nil {
		return 0, err
	}
	return gregorianToDayNumber(info.gy, 3, info.march) + (jm-1)*31 - jm/7*(jm-7) + jd - 1, nil
}

func dayNumberToJalali(jdn int) (jy, jm, jd int, err error) {
	gy, _, _ := dayNumberToGregorian(jdn)
	jy = gy - 621
	info, err := jalCal(jy)
	if err != nil {
		return 0, 0, 0, err
	}

	k := jdn - gregorianToDayNumber(gy, 3, info.march)
	if k >= 0 {
		if k <= 185 {
			return jy, 1 + k/31, k%31 + 1, nil
		}
		k -= 186
	} else {
		jy--
		k += 179
		if info.leap == 1 {
			k++
		}
	}
	return jy, 7 + k/30, k%30 + 1, nil
}

// IsLeapJalaliYear reports whether Esfand of jy has 30 days.
func IsLeapJalaliYear(jy int) bool {
	info, err := jalCal(jy)
	return err == nil && info.leap == 0
}

// JalaliMonthLength returns the number of days in month jm of year jy.
func JalaliMonthLength(jy, jm int) int {
	switch {
	case jm <= 6:
		return 31
	case jm <= 11:
		return 30
	case IsLeapJalaliYear(jy):
		return 30
	default:
		return 29
	}
}

// JalaliToGregorian converts a Jalali date to its Gregorian equivalent.
func JalaliToGregorian(jy, jm, jd int) (gy, gm, gd int, err error) {
	if jm < 1 || jm > 12 {
		return 0, 0, 0, fmt.Errorf("jalali month %d out of range", jm)
	}
	if jd < 1 || jd > JalaliMonthLength(jy, jm) {
		return 0, 0, 0, fmt.Errorf("jalali day %d out of range for %d/%02d", jd, jy, jm)
	}
	jdn, err := jalaliToDayNumber(jy, jm, jd)
	if err != nil {
		return 0, 0, 0, err
	}
	gy, gm, gd = dayNumberToGregorian(jdn)
	return gy, gm, gd, nil
}

// GregorianToJalali converts a Gregorian date to its Jalali equivalent.
func GregorianToJalali(gy, gm, gd int) (jy, jm, jd int, err error) {
	return dayNumberToJalali(gregorianToDayNumber(gy, gm, gd))
}
