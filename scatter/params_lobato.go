package scatter

// lobatoParams holds the five-term rational parameterization of Lobato &
// Van Dyck (Acta Cryst. A70, 2014) as (a, b) pairs:
// f(s) = sum a*(2+b*(2s)^2) / (1+b*(2s)^2)^2.
//
// Same element coverage as xtablesParams; populated once, read-only.
var lobatoParams = map[string][5][2]float64{
	"H":  {{0.0175, 0.1337}, {0.0601, 0.8967}, {0.0985, 3.0868}, {0.0287, 4.7381}, {0.0598, 9.6567}},
	"C":  {{0.0447, 0.0616}, {0.1282, 0.4275}, {0.3785, 1.6024}, {0.5244, 4.6528}, {0.1788, 12.5631}},
	"N":  {{0.0511, 0.0613}, {0.1610, 0.4370}, {0.3991, 1.5481}, {0.4099, 4.3474}, {0.0858, 12.0358}},
	"O":  {{0.0487, 0.0517}, {0.1461, 0.3454}, {0.3455, 1.1736}, {0.3495, 3.1776}, {0.1020, 8.1182}},
	"Na": {{0.1071, 0.0834}, {0.3427, 0.5862}, {0.7715, 2.5208}, {1.0003, 12.0759}, {0.6956, 34.5675}},
	"Mg": {{0.1157, 0.0820}, {0.3433, 0.5680}, {0.4839, 2.7310}, {1.0941, 9.8225}, {0.5670, 25.4937}},
	"Al": {{0.1195, 0.0785}, {0.3287, 0.5266}, {0.6006, 2.6041}, {1.2793, 8.6138}, {0.6156, 24.6336}},
	"Si": {{0.1260, 0.0769}, {0.3186, 0.5044}, {0.6898, 2.4187}, {1.2541, 7.3450}, {0.5250, 20.1185}},
	"P":  {{0.1274, 0.0727}, {0.3053, 0.4685}, {0.7271, 2.1294}, {1.1602, 6.0859}, {0.4370, 15.8249}},
	"S":  {{0.1249, 0.0670}, {0.2814, 0.4178}, {0.6950, 1.7567}, {1.0933, 4.8844}, {0.3858, 12.5972}},
	"Ca": {{0.2027, 0.0875}, {0.6940, 0.7748}, {1.0801, 2.9902}, {1.8766, 13.4838}, {1.1032, 35.5973}},
	"Ti": {{0.1913, 0.0760}, {0.6299, 0.6216}, {1.0004, 2.3196}, {1.5309, 9.7688}, {1.0347, 27.3646}},
	"Fe": {{0.1973, 0.0679}, {0.6363, 0.5111}, {0.8516, 1.9002}, {1.1570, 7.4929}, {0.7398, 21.5566}},
	"Ni": {{0.1930, 0.0620}, {0.5883, 0.4415}, {0.7726, 1.5777}, {1.0365, 6.3051}, {0.6907, 18.5787}},
	"Cu": {{0.2157, 0.0674}, {0.6604, 0.4806}, {0.7618, 1.8369}, {0.7336, 7.2473}, {0.4281, 22.6562}},
	"Zn": {{0.2144, 0.0648}, {0.6323, 0.4500}, {0.7236, 1.6875}, {0.9147, 6.3965}, {0.5467, 18.3821}},
}
