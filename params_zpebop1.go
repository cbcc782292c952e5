package zpebop

// betaZPEBOP1 holds the published ZPEBOP-1 extended-Hückel constants in
// kcal/mol, keyed by element pair. Keys store each unordered pair once;
// lookups go through pairKey so A~B and B~A resolve to the same entry.
var betaZPEBOP1 = map[string]float64{
	"H~H": 7.887796,
	"H~Li": 2.673191,
	"H~Be": 5.151854,
	"H~B": 6.024092,
	"H~C": 6.777104,
	"H~N": 8.333327,
	"H~O": 10.604912,
	"H~F": 13.673434,
	"H~Na": 4.969876,
	"H~Mg": 5.515809,
	"H~Al": 5.572285,
	"H~Si": 6.055468,
	"H~P": 7.354413,
	"H~S": 8.101149,
	"H~Cl": 8.433729,
	"Li~Li": 0.702811,
	"Li~Be": 0.834588,
	"Li~B": 1.073041,
	"Li~C": 1.587599,
	"Li~N": 1.361696,
	"Li~O": 0.646335,
	"Li~F": 3.281875,
	"Li~Na": 10.328808,
	"Li~Mg": 1.907629,
	"Li~Al": 0.746736,
	"Li~Si": 0.809487,
	"Li~P": 1.211094,
	"Li~S": 1.129517,
	"Li~Cl": 2.321786,
	"Be~Be": 1.568774,
	"Be~B": 1.430722,
	"Be~C": 2.961845,
	"Be~N": 2.855169,
	"Be~O": 1.393071,
	"Be~F": 3.783883,
	"Be~Na": 4.681222,
	"Be~Mg": 1.713101,
	"Be~Al": 1.411897,
	"Be~Si": 1.223644,
	"Be~P": 1.474648,
	"Be~S": 1.581324,
	"Be~Cl": 2.748492,
	"B~B": 2.371986,
	"B~C": 2.497488,
	"B~N": 1.656625,
	"B~O": 0.878513,
	"B~F": 4.059987,
	"B~Na": 2.855169,
	"B~Mg": 1.939005,
	"B~Al": 1.386796,
	"B~Si": 1.738202,
	"B~P": 0.62751,
	"B~S": 1.895079,
	"B~Cl": 2.371986,
	"C~C": 2.510038,
	"C~N": 2.340611,
	"C~O": 2.974396,
	"C~F": 4.066262,
	"C~Na": 1.706826,
	"C~Mg": 5.352657,
	"C~Al": 2.604165,
	"C~Si": 1.731926,
	"C~P": 0.119227,
	"C~S": 2.089607,
	"C~Cl": 2.371986,
	"N~N": 2.516313,
	"N~O": 4.505519,
	"N~F": 5.710337,
	"N~Na": 2.045681,
	"N~Mg": 1.531123,
	"N~Al": 1.424447,
	"N~Si": 1.123242,
	"N~P": 0.621235,
	"N~S": 2.346886,
	"N~Cl": 3.350901,
	"O~O": 4.028612,
	"O~F": 4.90085,
	"O~Na": 0.131777,
	"O~Mg": 1.236194,
	"O~Al": 1.939005,
	"O~Si": 1.688001,
	"O~P": 1.94528,
	"O~S": 2.171183,
	"O~Cl": 1.876254,
	"F~F": 5.992717,
	"F~Na": 1.568774,
	"F~Mg": 2.026856,
	"F~Al": 2.704566,
	"F~Si": 2.748492,
	"F~P": 3.018321,
	"F~S": 2.830068,
	"F~Cl": 4.405117,
	"Na~Na": 1.449547,
	"Na~Mg": 1.167168,
	"Na~Al": 1.474648,
	"Na~Si": 1.110692,
	"Na~P": 0.928714,
	"Na~S": 0.734186,
	"Na~Cl": 1.223644,
	"Mg~Mg": 0.62751,
	"Mg~Al": 1.556224,
	"Mg~Si": 1.443272,
	"Mg~P": 1.211094,
	"Mg~S": 1.104417,
	"Mg~Cl": 1.073041,
	"Al~Al": 1.223644,
	"Al~Si": 1.066766,
	"Al~P": 1.179718,
	"Al~S": 1.506023,
	"Al~Cl": 2.039406,
	"Si~Si": 1.179718,
	"Si~P": 0.96009,
	"Si~S": 1.148343,
	"Si~Cl": 1.920179,
	"P~P": 1.430722,
	"P~S": 1.255019,
	"P~Cl": 1.913904,
	"S~S": 1.738202,
	"S~Cl": 2.127258,
	"Cl~Cl": 2.208834,
}
